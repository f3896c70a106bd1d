package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pizzariahttp "pizzaria/internal/adapters/in/http"
	"pizzaria/internal/adapters/out/postgres"
	"pizzaria/internal/adapters/out/postgres/orderrepo"
	"pizzaria/internal/adapters/out/postgres/userrepo"
	"pizzaria/internal/core/application/usecases/commands"
	"pizzaria/internal/core/application/usecases/queries"
	"pizzaria/internal/core/domain/services"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testSecret = []byte("test-secret")

// newTestAPI wires the whole application against an in-memory sqlite
// database and returns the echo instance serving it.
func newTestAPI(t *testing.T) *echo.Echo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// The in-memory database lives in a single connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&userrepo.UserDTO{},
	))

	uowFactory := postgres.NewGormUnitOfWorkFactory(db)
	catalog := services.NewDefaultPriceCatalog()
	policy := services.NewAccessPolicy()

	server := pizzariahttp.NewServer(
		commands.NewRegisterUserCommandHandler(userUoWFactory{uowFactory}),
		commands.NewCreateOrderCommandHandler(orderUoWFactory{uowFactory}, catalog, policy),
		commands.NewAddItemCommandHandler(orderUoWFactory{uowFactory}, catalog, policy),
		commands.NewRemoveItemCommandHandler(orderUoWFactory{uowFactory}, policy),
		commands.NewCancelOrderCommandHandler(orderUoWFactory{uowFactory}, policy),
		commands.NewFinalizeOrderCommandHandler(orderUoWFactory{uowFactory}, policy),
		queries.NewGetOrderQueryHandler(db, policy),
		queries.NewListOrdersQueryHandler(db, policy),
		uowFactory.Create().UserRepository(),
		testSecret,
		time.Hour,
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e
}

// orderUoWFactory and userUoWFactory narrow the concrete factory to the
// interfaces the command handlers expect.
type orderUoWFactory struct{ factory *postgres.GormUnitOfWorkFactory }

func (f orderUoWFactory) Create() commands.OrderUoW { return f.factory.Create() }

type userUoWFactory struct{ factory *postgres.GormUnitOfWorkFactory }

func (f userUoWFactory) Create() commands.UserUoW { return f.factory.Create() }

func doJSON(t *testing.T, e *echo.Echo, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&reader).Encode(body))
	}

	req := httptest.NewRequest(method, path, &reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var decoded T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return decoded
}

func createAccount(t *testing.T, e *echo.Echo, name, email, password string, admin bool) pizzariahttp.CreateAccountResponse {
	t.Helper()

	rec := doJSON(t, e, http.MethodPost, "/auth/criar_conta", "", pizzariahttp.CreateAccountRequest{
		Nome:  name,
		Email: email,
		Senha: password,
		Admin: admin,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody[pizzariahttp.CreateAccountResponse](t, rec)
}

func login(t *testing.T, e *echo.Echo, email, password string) string {
	t.Helper()

	rec := doJSON(t, e, http.MethodPost, "/auth/login", "", pizzariahttp.LoginRequest{
		Email: email,
		Senha: password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	response := decodeBody[pizzariahttp.LoginResponse](t, rec)
	require.NotEmpty(t, response.AccessToken)
	require.Equal(t, "bearer", response.TokenType)
	return response.AccessToken
}

func TestHealth(t *testing.T) {
	e := newTestAPI(t)

	rec := doJSON(t, e, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_RegisterAndLogin(t *testing.T) {
	e := newTestAPI(t)

	account := createAccount(t, e, "Maria", "Maria@Pizzaria.DEV", "segredo123", false)
	assert.Equal(t, "maria@pizzaria.dev", account.Email)
	assert.False(t, account.Admin)

	t.Run("login succeeds with correct password", func(t *testing.T) {
		login(t, e, "maria@pizzaria.dev", "segredo123")
	})

	t.Run("login fails with wrong password", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPost, "/auth/login", "", pizzariahttp.LoginRequest{
			Email: "maria@pizzaria.dev",
			Senha: "errada",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("login fails for unknown email", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPost, "/auth/login", "", pizzariahttp.LoginRequest{
			Email: "ghost@pizzaria.dev",
			Senha: "segredo123",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPost, "/auth/criar_conta", "", pizzariahttp.CreateAccountRequest{
			Nome:  "Maria Dois",
			Email: "maria@pizzaria.dev",
			Senha: "outra456",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOrders_RequireAuthentication(t *testing.T) {
	e := newTestAPI(t)

	rec := doJSON(t, e, http.MethodGet, "/orders/lista", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, e, http.MethodGet, "/orders/lista", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOrderLifecycle_PricingWalkthrough(t *testing.T) {
	e := newTestAPI(t)

	createAccount(t, e, "Maria", "maria@pizzaria.dev", "segredo123", false)
	createAccount(t, e, "Admin", "admin@pizzaria.dev", "admin123", true)
	mariaToken := login(t, e, "maria@pizzaria.dev", "segredo123")
	adminToken := login(t, e, "admin@pizzaria.dev", "admin123")

	// Two large calabresas at the menu price of 50.0 each.
	rec := doJSON(t, e, http.MethodPost, "/orders/pedido", mariaToken, pizzariahttp.CreateOrderRequest{
		Itens: []pizzariahttp.OrderItemRequest{
			{Sabor: "calabresa", Tamanho: "grande", Quantidade: 2},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := decodeBody[pizzariahttp.OrderResponse](t, rec)
	assert.Equal(t, "pendente", created.Status)
	assert.InDelta(t, 100.0, created.Preco, 1e-9)
	orderID := created.ID

	// Adding a small marguerita at 32.0 brings the total to 132.0.
	rec = doJSON(t, e, http.MethodPost, "/orders/pedido/adicionar-item/"+orderID, mariaToken, pizzariahttp.ItemMutationRequest{
		Sabor: "marguerita", Tamanho: "pequeno", Quantidade: 1,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.InDelta(t, 132.0, decodeBody[pizzariahttp.OrderResponse](t, rec).Preco, 1e-9)

	// Removing one calabresa drops 50.0.
	rec = doJSON(t, e, http.MethodPost, "/orders/pedido/remover-item/"+orderID, mariaToken, pizzariahttp.ItemMutationRequest{
		Sabor: "Calabresa", Tamanho: "GRANDE", Quantidade: 1,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	removal := decodeBody[pizzariahttp.RemoveItemResponse](t, rec)
	assert.InDelta(t, 82.0, removal.Pedido.Preco, 1e-9)
	assert.InDelta(t, 50.0, removal.Removido.Valor, 1e-9)
	assert.False(t, removal.Removido.Removido)

	// Removing the last calabresa deletes the line item.
	rec = doJSON(t, e, http.MethodPost, "/orders/pedido/remover-item/"+orderID, mariaToken, pizzariahttp.ItemMutationRequest{
		Sabor: "calabresa", Tamanho: "grande", Quantidade: 1,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	removal = decodeBody[pizzariahttp.RemoveItemResponse](t, rec)
	assert.InDelta(t, 32.0, removal.Pedido.Preco, 1e-9)
	assert.True(t, removal.Removido.Removido)
	assert.Len(t, removal.Pedido.Itens, 1)

	// Finalize as admin, then verify the order rejects further changes.
	rec = doJSON(t, e, http.MethodPost, "/orders/pedido/finalizar/"+orderID, adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "fechado", decodeBody[pizzariahttp.OrderResponse](t, rec).Status)

	rec = doJSON(t, e, http.MethodPost, "/orders/pedido/adicionar-item/"+orderID, mariaToken, pizzariahttp.ItemMutationRequest{
		Sabor: "calabresa", Tamanho: "grande", Quantidade: 1,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, e, http.MethodGet, "/orders/pedido/"+orderID, mariaToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	fetched := decodeBody[pizzariahttp.OrderResponse](t, rec)
	assert.Equal(t, "fechado", fetched.Status)
	assert.InDelta(t, 32.0, fetched.Preco, 1e-9)
}

func TestOrders_OwnershipEnforced(t *testing.T) {
	e := newTestAPI(t)

	createAccount(t, e, "Maria", "maria@pizzaria.dev", "segredo123", false)
	createAccount(t, e, "Pedro", "pedro@pizzaria.dev", "segredo456", false)
	createAccount(t, e, "Admin", "admin@pizzaria.dev", "admin123", true)
	mariaToken := login(t, e, "maria@pizzaria.dev", "segredo123")
	pedroToken := login(t, e, "pedro@pizzaria.dev", "segredo456")
	adminToken := login(t, e, "admin@pizzaria.dev", "admin123")

	rec := doJSON(t, e, http.MethodPost, "/orders/pedido", mariaToken, pizzariahttp.CreateOrderRequest{
		Itens: []pizzariahttp.OrderItemRequest{
			{Sabor: "portuguesa", Tamanho: "medio", Quantidade: 1},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	mariaOrder := decodeBody[pizzariahttp.OrderResponse](t, rec)
	orderID := mariaOrder.ID

	t.Run("stranger cannot read the order", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodGet, "/orders/pedido/"+orderID, pedroToken, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("stranger cannot mutate the order", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPost, "/orders/pedido/cancelar/"+orderID, pedroToken, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("own list excludes other users orders", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodGet, "/orders/lista", pedroToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decodeBody[[]pizzariahttp.OrderResponse](t, rec))

		rec = doJSON(t, e, http.MethodGet, "/orders/lista", mariaToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeBody[[]pizzariahttp.OrderResponse](t, rec), 1)
	})

	t.Run("full listing is admin only", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodGet, "/orders/listar", mariaToken, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)

		rec = doJSON(t, e, http.MethodGet, "/orders/listar", adminToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeBody[[]pizzariahttp.OrderResponse](t, rec), 1)
	})

	t.Run("admin can read any order", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodGet, "/orders/pedido/"+orderID, adminToken, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("finalize is admin only", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPost, "/orders/pedido/finalizar/"+orderID, mariaToken, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("non-admin cannot create for another user", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPost, "/orders/pedido", pedroToken, pizzariahttp.CreateOrderRequest{
			UsuarioID: mariaOrder.UsuarioID,
			Itens: []pizzariahttp.OrderItemRequest{
				{Sabor: "calabresa", Tamanho: "pequeno", Quantidade: 1},
			},
		})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestOrders_ErrorResponses(t *testing.T) {
	e := newTestAPI(t)

	createAccount(t, e, "Maria", "maria@pizzaria.dev", "segredo123", false)
	token := login(t, e, "maria@pizzaria.dev", "segredo123")

	t.Run("unknown flavor and size combination", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPost, "/orders/pedido", token, pizzariahttp.CreateOrderRequest{
			Itens: []pizzariahttp.OrderItemRequest{
				{Sabor: "abacaxi", Tamanho: "grande", Quantidade: 1},
			},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid quantity", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPost, "/orders/pedido", token, pizzariahttp.CreateOrderRequest{
			Itens: []pizzariahttp.OrderItemRequest{
				{Sabor: "calabresa", Tamanho: "grande", Quantidade: 0},
			},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid status literal", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPost, "/orders/pedido", token, pizzariahttp.CreateOrderRequest{
			Status: "entregue",
			Itens: []pizzariahttp.OrderItemRequest{
				{Sabor: "calabresa", Tamanho: "grande", Quantidade: 1},
			},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("order not found", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodGet, "/orders/pedido/0b1ff5a3-2f0a-4f8e-9a39-000000000000", token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed order id", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodGet, "/orders/pedido/not-a-uuid", token, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("removing an item the order does not have", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPost, "/orders/pedido", token, pizzariahttp.CreateOrderRequest{
			Itens: []pizzariahttp.OrderItemRequest{
				{Sabor: "calabresa", Tamanho: "grande", Quantidade: 1},
			},
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		orderID := decodeBody[pizzariahttp.OrderResponse](t, rec).ID

		rec = doJSON(t, e, http.MethodPost, "/orders/pedido/remover-item/"+orderID, token, pizzariahttp.ItemMutationRequest{
			Sabor: "marguerita", Tamanho: "pequeno", Quantidade: 1,
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("cancelling twice is an invalid transition", func(t *testing.T) {
		rec := doJSON(t, e, http.MethodPost, "/orders/pedido", token, pizzariahttp.CreateOrderRequest{
			Itens: []pizzariahttp.OrderItemRequest{
				{Sabor: "calabresa", Tamanho: "grande", Quantidade: 1},
			},
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		orderID := decodeBody[pizzariahttp.OrderResponse](t, rec).ID

		rec = doJSON(t, e, http.MethodPost, "/orders/pedido/cancelar/"+orderID, token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "cancelado", decodeBody[pizzariahttp.OrderResponse](t, rec).Status)

		rec = doJSON(t, e, http.MethodPost, "/orders/pedido/cancelar/"+orderID, token, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCreateOrder_ExplicitUnitPriceWins(t *testing.T) {
	e := newTestAPI(t)

	createAccount(t, e, "Maria", "maria@pizzaria.dev", "segredo123", false)
	token := login(t, e, "maria@pizzaria.dev", "segredo123")

	price := 10.0
	rec := doJSON(t, e, http.MethodPost, "/orders/pedido", token, pizzariahttp.CreateOrderRequest{
		Itens: []pizzariahttp.OrderItemRequest{
			{Sabor: "calabresa", Tamanho: "grande", Quantidade: 2, PrecoUnitario: &price},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := decodeBody[pizzariahttp.OrderResponse](t, rec)
	assert.InDelta(t, 20.0, created.Preco, 1e-9)
	assert.InDelta(t, 10.0, created.Itens[0].PrecoUnitario, 1e-9)
}

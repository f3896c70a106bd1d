package http

import (
	"pizzaria/internal/core/application/usecases/commands"
	"pizzaria/internal/core/application/usecases/queries"
	"pizzaria/internal/core/domain/model/order"
)

// ErrorResponse is the JSON payload returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateAccountRequest carries the data for registering a new user account.
type CreateAccountRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
	Admin bool   `json:"admin"`
}

// CreateAccountResponse confirms a successful registration.
type CreateAccountResponse struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Admin bool   `json:"admin"`
}

// LoginRequest carries the login credentials.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// OrderItemRequest is one line item in an order creation request. The unit
// price is optional; when omitted the menu price is used.
type OrderItemRequest struct {
	Sabor         string   `json:"sabor"`
	Tamanho       string   `json:"tamanho"`
	Quantidade    int      `json:"quantidade"`
	PrecoUnitario *float64 `json:"preco_unitario,omitempty"`
}

// CreateOrderRequest carries the data for creating an order. The owner id is
// optional; when omitted the order belongs to the authenticated caller.
type CreateOrderRequest struct {
	UsuarioID string             `json:"usuario_id,omitempty"`
	Status    string             `json:"status,omitempty"`
	Itens     []OrderItemRequest `json:"itens"`
}

// ItemMutationRequest identifies the units to add to or remove from an order.
type ItemMutationRequest struct {
	Sabor      string `json:"sabor"`
	Tamanho    string `json:"tamanho"`
	Quantidade int    `json:"quantidade"`
}

// OrderItemResponse is one line item of an order as returned to clients.
type OrderItemResponse struct {
	Sabor         string  `json:"sabor"`
	Tamanho       string  `json:"tamanho"`
	Quantidade    int     `json:"quantidade"`
	PrecoUnitario float64 `json:"preco_unitario"`
	Subtotal      float64 `json:"subtotal"`
}

// OrderResponse is an order as returned to clients.
type OrderResponse struct {
	ID        string              `json:"id"`
	UsuarioID string              `json:"usuario_id"`
	Status    string              `json:"status"`
	Preco     float64             `json:"preco"`
	Itens     []OrderItemResponse `json:"itens"`
}

// RemovedItemResponse summarizes a removal: how many units went away, at
// which captured price, and whether the whole line item was deleted.
type RemovedItemResponse struct {
	Sabor         string  `json:"sabor"`
	Tamanho       string  `json:"tamanho"`
	Quantidade    int     `json:"quantidade"`
	PrecoUnitario float64 `json:"preco_unitario"`
	Valor         float64 `json:"valor"`
	Removido      bool    `json:"item_removido"`
}

// RemoveItemResponse pairs the removal summary with the updated order.
type RemoveItemResponse struct {
	Removido RemovedItemResponse `json:"removido"`
	Pedido   OrderResponse       `json:"pedido"`
}

func orderItemInputsFromRequest(items []OrderItemRequest) []commands.OrderItemInput {
	inputs := make([]commands.OrderItemInput, len(items))
	for i, item := range items {
		inputs[i] = commands.OrderItemInput{
			Flavor:    item.Sabor,
			Size:      item.Tamanho,
			Quantity:  item.Quantidade,
			UnitPrice: item.PrecoUnitario,
		}
	}
	return inputs
}

func orderResponseFromAggregate(aggregate *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemResponse{
			Sabor:         item.Flavor(),
			Tamanho:       item.Size(),
			Quantidade:    item.Quantity(),
			PrecoUnitario: item.UnitPrice(),
			Subtotal:      item.Subtotal(),
		})
	}

	return OrderResponse{
		ID:        aggregate.ID().String(),
		UsuarioID: aggregate.OwnerID().String(),
		Status:    aggregate.Status().String(),
		Preco:     aggregate.TotalPrice(),
		Itens:     items,
	}
}

func orderResponseFromReadModel(model queries.OrderResponse) OrderResponse {
	items := make([]OrderItemResponse, 0, len(model.Items))
	for _, item := range model.Items {
		items = append(items, OrderItemResponse{
			Sabor:         item.Flavor,
			Tamanho:       item.Size,
			Quantidade:    item.Quantity,
			PrecoUnitario: item.UnitPrice,
			Subtotal:      item.Subtotal,
		})
	}

	return OrderResponse{
		ID:        model.ID.String(),
		UsuarioID: model.OwnerID.String(),
		Status:    model.Status,
		Preco:     model.TotalPrice,
		Itens:     items,
	}
}

func removedItemResponse(removed order.RemovedItem) RemovedItemResponse {
	return RemovedItemResponse{
		Sabor:         removed.Flavor,
		Tamanho:       removed.Size,
		Quantidade:    removed.Quantity,
		PrecoUnitario: removed.UnitPrice,
		Valor:         removed.Amount,
		Removido:      removed.Deleted,
	}
}

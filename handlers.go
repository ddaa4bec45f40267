package patternsapi

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/fwbench/patterns-api/auth"
	"github.com/fwbench/patterns-api/checkout"
	"github.com/fwbench/patterns-api/payment"
	"github.com/fwbench/patterns-api/schema"
	"github.com/fwbench/patterns-api/serializer"
	"github.com/fwbench/patterns-api/store"
)

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// respondSerializer resolves the response format or reports the failure
// itself. The error payload echoes the offending format value and is
// always JSON, since no serializer could be selected.
func respondSerializer(w http.ResponseWriter, r *http.Request) (serializer.Serializer, bool) {
	s, err := requestSerializer(r.URL.Query())
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return nil, false
	}
	return s, true
}

func (a *App) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	s, ok := respondSerializer(w, r)
	if !ok {
		return
	}
	var req schema.CreateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", s)
		return
	}
	if err := schema.Validate(req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error(), s)
		return
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "hash password", s)
		return
	}
	u, err := a.Store.CreateUser(r.Context(), req.Name, req.Email, hash)
	if err != nil {
		writeError(w, http.StatusConflict, "could not create user", s)
		return
	}
	writeResponse(w, http.StatusCreated, map[string]any{"user": u}, s)
}

func (a *App) handleListUsers(w http.ResponseWriter, r *http.Request) {
	s, ok := respondSerializer(w, r)
	if !ok {
		return
	}
	limit, err := parseLimit(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), s)
		return
	}
	users, err := a.Store.ListUsers(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list users", s)
		return
	}
	writeResponse(w, http.StatusOK, map[string]any{"users": users}, s)
}

func (a *App) handleGetUser(w http.ResponseWriter, r *http.Request) {
	s, ok := respondSerializer(w, r)
	if !ok {
		return
	}
	u, err := a.Store.GetUser(r.Context(), r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "user not found", s)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "get user", s)
		return
	}
	writeResponse(w, http.StatusOK, map[string]any{"user": u}, s)
}

func (a *App) handleLogin(w http.ResponseWriter, r *http.Request) {
	s, ok := respondSerializer(w, r)
	if !ok {
		return
	}
	var req schema.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", s)
		return
	}
	if err := schema.Validate(req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error(), s)
		return
	}
	u, err := a.Store.GetUserByEmail(r.Context(), req.Email)
	if err != nil || !auth.CheckPassword(u.PasswordHash, req.Password) {
		writeError(w, http.StatusUnauthorized, "invalid credentials", s)
		return
	}
	token := a.Tokens.Issue(u.ID)
	writeResponse(w, http.StatusOK, map[string]any{"token": token, "user_id": u.ID}, s)
}

func (a *App) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	s, ok := respondSerializer(w, r)
	if !ok {
		return
	}
	var req schema.CreateProductRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", s)
		return
	}
	if err := schema.Validate(req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error(), s)
		return
	}
	p, err := a.Store.CreateProduct(r.Context(), req.Name, req.Price, req.Stock)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "create product", s)
		return
	}
	writeResponse(w, http.StatusCreated, map[string]any{"product": p}, s)
}

func (a *App) handleListProducts(w http.ResponseWriter, r *http.Request) {
	s, ok := respondSerializer(w, r)
	if !ok {
		return
	}
	limit, err := parseLimit(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), s)
		return
	}
	products, err := a.Store.ListProducts(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list products", s)
		return
	}
	writeResponse(w, http.StatusOK, map[string]any{"products": products}, s)
}

func (a *App) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	s, ok := respondSerializer(w, r)
	if !ok {
		return
	}
	p, err := a.Store.GetProduct(r.Context(), r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "product not found", s)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "get product", s)
		return
	}
	writeResponse(w, http.StatusOK, map[string]any{"product": p}, s)
}

func (a *App) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	s, ok := respondSerializer(w, r)
	if !ok {
		return
	}
	var req schema.CreateOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", s)
		return
	}
	if err := schema.Validate(req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error(), s)
		return
	}
	o, err := a.Store.CreateOrder(r.Context(), req.UserID, req.ProductID, req.Quantity)
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "product not found", s)
		return
	case errors.Is(err, store.ErrInsufficientStock):
		writeError(w, http.StatusConflict, "insufficient stock", s)
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "create order", s)
		return
	}
	writeResponse(w, http.StatusCreated, map[string]any{"order": o}, s)
}

func (a *App) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	s, ok := respondSerializer(w, r)
	if !ok {
		return
	}
	o, err := a.Store.GetOrder(r.Context(), r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "order not found", s)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "get order", s)
		return
	}
	writeResponse(w, http.StatusOK, map[string]any{"order": o}, s)
}

func (a *App) handleCreatePayment(w http.ResponseWriter, r *http.Request) {
	s, ok := respondSerializer(w, r)
	if !ok {
		return
	}
	var req schema.CreatePaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", s)
		return
	}
	if err := schema.Validate(req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error(), s)
		return
	}
	strategy, err := payment.ParseMethod(req.Method)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), s)
		return
	}
	if _, err := a.Store.GetOrder(r.Context(), req.OrderID); err != nil {
		writeError(w, http.StatusNotFound, "order not found", s)
		return
	}
	receipt, err := payment.NewProcessor(strategy).Execute(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), s)
		return
	}
	p, err := a.Store.CreatePayment(r.Context(), req.OrderID, receipt.Method, receipt.Amount, receipt.TransactionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "record payment", s)
		return
	}
	if err := a.Store.SetOrderStatus(r.Context(), req.OrderID, "paid"); err != nil {
		writeError(w, http.StatusInternalServerError, "update order", s)
		return
	}
	writeResponse(w, http.StatusCreated, map[string]any{"payment": p}, s)
}

func (a *App) handleCheckout(w http.ResponseWriter, r *http.Request) {
	s, ok := respondSerializer(w, r)
	if !ok {
		return
	}
	var req schema.CheckoutRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", s)
		return
	}
	if err := schema.Validate(req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error(), s)
		return
	}
	sum, err := a.Facade.CompleteOrder(r.Context(), req.ProductID, req.ZipCode, req.Subtotal)
	if errors.Is(err, checkout.ErrOutOfStock) {
		writeError(w, http.StatusConflict, "product out of stock", s)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "checkout", s)
		return
	}
	writeResponse(w, http.StatusOK, map[string]any{"checkout": sum}, s)
}

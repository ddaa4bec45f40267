package patternsapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fwbench/patterns-api/auth"
	"github.com/fwbench/patterns-api/checkout"
	"github.com/fwbench/patterns-api/payment"
	"github.com/fwbench/patterns-api/schema"
	"github.com/fwbench/patterns-api/serializer"
	"github.com/fwbench/patterns-api/store"
)

// ginSerializer resolves the response format for a gin request. On an
// unsupported format the request is already answered.
func ginSerializer(c *gin.Context) (serializer.Serializer, bool) {
	format := c.DefaultQuery("format", "json")
	s, err := serializer.New(format)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return s, true
}

func ginRespond(c *gin.Context, status int, payload any, s serializer.Serializer) {
	buf, err := s.Serialize(payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "serialization failed"})
		return
	}
	c.Data(status, s.ContentType(), buf)
}

func ginError(c *gin.Context, status int, msg string, s serializer.Serializer) {
	ginRespond(c, status, map[string]any{"error": msg}, s)
}

func (a *App) ginHealth(c *gin.Context) {
	c.JSON(http.StatusOK, a.healthPayload("gin"))
}

func (a *App) ginCreateUser(c *gin.Context) {
	s, ok := ginSerializer(c)
	if !ok {
		return
	}
	var req schema.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginError(c, http.StatusBadRequest, "invalid request body", s)
		return
	}
	if err := schema.Validate(req); err != nil {
		ginError(c, http.StatusUnprocessableEntity, err.Error(), s)
		return
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		ginError(c, http.StatusInternalServerError, "hash password", s)
		return
	}
	u, err := a.Store.CreateUser(c.Request.Context(), req.Name, req.Email, hash)
	if err != nil {
		ginError(c, http.StatusConflict, "could not create user", s)
		return
	}
	ginRespond(c, http.StatusCreated, map[string]any{"user": u}, s)
}

func (a *App) ginListUsers(c *gin.Context) {
	s, ok := ginSerializer(c)
	if !ok {
		return
	}
	limit, err := parseLimit(c.Request.URL.Query())
	if err != nil {
		ginError(c, http.StatusBadRequest, err.Error(), s)
		return
	}
	users, err := a.Store.ListUsers(c.Request.Context(), limit)
	if err != nil {
		ginError(c, http.StatusInternalServerError, "list users", s)
		return
	}
	ginRespond(c, http.StatusOK, map[string]any{"users": users}, s)
}

func (a *App) ginGetUser(c *gin.Context) {
	s, ok := ginSerializer(c)
	if !ok {
		return
	}
	u, err := a.Store.GetUser(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		ginError(c, http.StatusNotFound, "user not found", s)
		return
	}
	if err != nil {
		ginError(c, http.StatusInternalServerError, "get user", s)
		return
	}
	ginRespond(c, http.StatusOK, map[string]any{"user": u}, s)
}

func (a *App) ginLogin(c *gin.Context) {
	s, ok := ginSerializer(c)
	if !ok {
		return
	}
	var req schema.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginError(c, http.StatusBadRequest, "invalid request body", s)
		return
	}
	if err := schema.Validate(req); err != nil {
		ginError(c, http.StatusUnprocessableEntity, err.Error(), s)
		return
	}
	u, err := a.Store.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil || !auth.CheckPassword(u.PasswordHash, req.Password) {
		ginError(c, http.StatusUnauthorized, "invalid credentials", s)
		return
	}
	token := a.Tokens.Issue(u.ID)
	ginRespond(c, http.StatusOK, map[string]any{"token": token, "user_id": u.ID}, s)
}

func (a *App) ginCreateProduct(c *gin.Context) {
	s, ok := ginSerializer(c)
	if !ok {
		return
	}
	var req schema.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginError(c, http.StatusBadRequest, "invalid request body", s)
		return
	}
	if err := schema.Validate(req); err != nil {
		ginError(c, http.StatusUnprocessableEntity, err.Error(), s)
		return
	}
	p, err := a.Store.CreateProduct(c.Request.Context(), req.Name, req.Price, req.Stock)
	if err != nil {
		ginError(c, http.StatusInternalServerError, "create product", s)
		return
	}
	ginRespond(c, http.StatusCreated, map[string]any{"product": p}, s)
}

func (a *App) ginListProducts(c *gin.Context) {
	s, ok := ginSerializer(c)
	if !ok {
		return
	}
	limit, err := parseLimit(c.Request.URL.Query())
	if err != nil {
		ginError(c, http.StatusBadRequest, err.Error(), s)
		return
	}
	products, err := a.Store.ListProducts(c.Request.Context(), limit)
	if err != nil {
		ginError(c, http.StatusInternalServerError, "list products", s)
		return
	}
	ginRespond(c, http.StatusOK, map[string]any{"products": products}, s)
}

func (a *App) ginGetProduct(c *gin.Context) {
	s, ok := ginSerializer(c)
	if !ok {
		return
	}
	p, err := a.Store.GetProduct(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		ginError(c, http.StatusNotFound, "product not found", s)
		return
	}
	if err != nil {
		ginError(c, http.StatusInternalServerError, "get product", s)
		return
	}
	ginRespond(c, http.StatusOK, map[string]any{"product": p}, s)
}

func (a *App) ginCreateOrder(c *gin.Context) {
	s, ok := ginSerializer(c)
	if !ok {
		return
	}
	var req schema.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginError(c, http.StatusBadRequest, "invalid request body", s)
		return
	}
	if err := schema.Validate(req); err != nil {
		ginError(c, http.StatusUnprocessableEntity, err.Error(), s)
		return
	}
	o, err := a.Store.CreateOrder(c.Request.Context(), req.UserID, req.ProductID, req.Quantity)
	switch {
	case errors.Is(err, store.ErrNotFound):
		ginError(c, http.StatusNotFound, "product not found", s)
		return
	case errors.Is(err, store.ErrInsufficientStock):
		ginError(c, http.StatusConflict, "insufficient stock", s)
		return
	case err != nil:
		ginError(c, http.StatusInternalServerError, "create order", s)
		return
	}
	ginRespond(c, http.StatusCreated, map[string]any{"order": o}, s)
}

func (a *App) ginGetOrder(c *gin.Context) {
	s, ok := ginSerializer(c)
	if !ok {
		return
	}
	o, err := a.Store.GetOrder(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		ginError(c, http.StatusNotFound, "order not found", s)
		return
	}
	if err != nil {
		ginError(c, http.StatusInternalServerError, "get order", s)
		return
	}
	ginRespond(c, http.StatusOK, map[string]any{"order": o}, s)
}

func (a *App) ginCreatePayment(c *gin.Context) {
	s, ok := ginSerializer(c)
	if !ok {
		return
	}
	var req schema.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginError(c, http.StatusBadRequest, "invalid request body", s)
		return
	}
	if err := schema.Validate(req); err != nil {
		ginError(c, http.StatusUnprocessableEntity, err.Error(), s)
		return
	}
	strategy, err := payment.ParseMethod(req.Method)
	if err != nil {
		ginError(c, http.StatusBadRequest, err.Error(), s)
		return
	}
	if _, err := a.Store.GetOrder(c.Request.Context(), req.OrderID); err != nil {
		ginError(c, http.StatusNotFound, "order not found", s)
		return
	}
	receipt, err := payment.NewProcessor(strategy).Execute(req.Amount)
	if err != nil {
		ginError(c, http.StatusBadRequest, err.Error(), s)
		return
	}
	p, err := a.Store.CreatePayment(c.Request.Context(), req.OrderID, receipt.Method, receipt.Amount, receipt.TransactionID)
	if err != nil {
		ginError(c, http.StatusInternalServerError, "record payment", s)
		return
	}
	if err := a.Store.SetOrderStatus(c.Request.Context(), req.OrderID, "paid"); err != nil {
		ginError(c, http.StatusInternalServerError, "update order", s)
		return
	}
	ginRespond(c, http.StatusCreated, map[string]any{"payment": p}, s)
}

func (a *App) ginCheckout(c *gin.Context) {
	s, ok := ginSerializer(c)
	if !ok {
		return
	}
	var req schema.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginError(c, http.StatusBadRequest, "invalid request body", s)
		return
	}
	if err := schema.Validate(req); err != nil {
		ginError(c, http.StatusUnprocessableEntity, err.Error(), s)
		return
	}
	sum, err := a.Facade.CompleteOrder(c.Request.Context(), req.ProductID, req.ZipCode, req.Subtotal)
	if errors.Is(err, checkout.ErrOutOfStock) {
		ginError(c, http.StatusConflict, "product out of stock", s)
		return
	}
	if err != nil {
		ginError(c, http.StatusInternalServerError, "checkout", s)
		return
	}
	ginRespond(c, http.StatusOK, map[string]any{"checkout": sum}, s)
}

package services

import "errors"

var (
	// ErrProductNotFound rejects a cart add for an unknown or retired product.
	ErrProductNotFound = errors.New("producto no encontrado")
	// ErrEmptyCart signals there is nothing to confirm. It is not a failure:
	// callers send the user back to the unchanged cart.
	ErrEmptyCart     = errors.New("carrito vacío")
	ErrEmailRequired = errors.New("email requerido")
	ErrEmailInvalid  = errors.New("email inválido")
	ErrBadCreds      = errors.New("credenciales inválidas")
	// ErrNoSession means the request carries no bound session.
	ErrNoSession = errors.New("sin sesión")
)

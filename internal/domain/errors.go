package domain

import "fmt"

// Status clasificación de un error de API para que la capa HTTP
// pueda mapearlo determinísticamente a un status de transporte.
type Status int

const (
	// StatusStore fallo opaco del almacén (violación de constraint,
	// conectividad, query malformada). No se descompone más.
	StatusStore Status = iota
	// StatusNotFound la entidad pedida no existe.
	StatusNotFound
	// StatusBadRequest el cliente intentó mutar un campo inmutable.
	StatusBadRequest
)

// Error portador uniforme de fallo: clasificación + mensaje legible.
type Error struct {
	Status  Status
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NotFoundf construye un error NotFound con el identificador ofensor en el mensaje.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Status: StatusNotFound, Message: fmt.Sprintf(format, args...)}
}

// BadRequest construye un error BadRequest.
func BadRequest(message string) *Error {
	return &Error{Status: StatusBadRequest, Message: message}
}

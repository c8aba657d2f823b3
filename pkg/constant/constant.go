package constant

const (
	AuthorizationHeader = "Authorization"
	BearerPrefix        = "Bearer "

	// FallbackIPAddress is stored when the client address cannot be determined.
	FallbackIPAddress = "0.0.0.0"
)

// Response messages returned by the API.
const (
	MsgInvalidToken     = "Token ausente o inválido"
	MsgNoInputData      = "No se proporcionaron datos de entrada"
	MsgMissingFields    = "Se requieren los campos email y app_uuid"
	MsgInvalidAppUUID   = "Formato inválido para app_uuid"
	MsgBlacklistCreated = "Email agregado a la lista negra correctamente"
	MsgStoreUnavailable = "Servicio no disponible temporalmente"
	MsgNotFound         = "Recurso no encontrado"
	MsgInternalError    = "Error interno del servidor"
	MsgBadRequest       = "Solicitud inválida"
	MsgMethodNotAllowed = "Método no permitido"
	MsgRequestTimeout   = "Tiempo de espera agotado"
	MsgBodyTooLarge     = "El cuerpo de la solicitud es demasiado grande"
)

package model

// CodigoResultado is the closed set of domain outcomes for the state-mutating
// operations. Failures are ordinary result values, never panics: every
// outcome is reported back to the console with a human-readable message.
type CodigoResultado string

const (
	CodigoAsignado        CodigoResultado = "ASSIGNED"
	CodigoRegistrado      CodigoResultado = "REGISTERED"
	CodigoRMARegistrado   CodigoResultado = "RMA_REGISTERED"
	CodigoNoEncontrado    CodigoResultado = "NOT_FOUND"
	CodigoNoDisponible    CodigoResultado = "NOT_AVAILABLE"
	CodigoSerialDuplicado CodigoResultado = "DUPLICATE_SERIAL"
	CodigoYaEnRMA         CodigoResultado = "ALREADY_IN_RMA"
	CodigoErrorValidacion CodigoResultado = "VALIDATION_ERROR"
)

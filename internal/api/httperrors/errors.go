package httperrors

import "net/http"

var (
	ErrNotFoundSession       = NewHTTPError(http.StatusNotFound, PublicHTTPErrorTypeSESSIONNOTFOUND, "Send flow not found.")
	ErrGoneFlowClosed        = NewHTTPError(http.StatusGone, PublicHTTPErrorTypeFLOWCLOSED, "The send flow is closed.")
	ErrBadRequestBody        = NewHTTPError(http.StatusBadRequest, PublicHTTPErrorTypeINVALIDBODY, "The request body is invalid.")
	ErrNotFoundNetwork       = NewHTTPError(http.StatusNotFound, PublicHTTPErrorTypeUNKNOWNNETWORK, "Unknown network.")
	ErrBadRequestNetwork     = NewHTTPError(http.StatusBadRequest, PublicHTTPErrorTypeUNSUPPORTEDNETWORK, "The network does not support transfers.")
	ErrServiceUnavailableRPC = NewHTTPError(http.StatusServiceUnavailable, PublicHTTPErrorTypeBACKENDUNAVAILABLE, "The network backend is unavailable.")
)

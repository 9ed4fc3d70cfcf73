package services

import "errors"

// Common service-level errors
var (
	// ErrBarcodeUnknown means no barcode mapping matched a scanned code,
	// neither remotely nor in the local cache.
	ErrBarcodeUnknown = errors.New("barcode not recognized")
)

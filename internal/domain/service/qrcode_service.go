package service

// QRCodeService defines the interface for credit certificate QR generation.
type QRCodeService interface {
	// GenerateCertificateQR renders a PNG QR code encoding a credit's
	// transaction reference.
	GenerateCertificateQR(txnHash string) ([]byte, error)
}

package export

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// TrackingQR encodes the public tracking URL for a complaint as a PNG.
func TrackingQR(baseURL string, complaintID uint) ([]byte, error) {
	url := fmt.Sprintf("%s/track/%d", strings.TrimRight(baseURL, "/"), complaintID)
	return qrcode.Encode(url, qrcode.Medium, 256)
}

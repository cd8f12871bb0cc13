package service

import (
	"strconv"
	"strings"

	"github.com/skip2/go-qrcode"
)

const defaultQRSize = 256

// ReceiptQR encodes a link to the customer-facing order page as a PNG.
type ReceiptQR struct {
	BaseURL string
	Size    int
}

func (g ReceiptQR) Link(orderID int) string {
	return strings.TrimRight(g.BaseURL, "/") + "/order.html?order_id=" + strconv.Itoa(orderID)
}

func (g ReceiptQR) Generate(orderID int) ([]byte, error) {
	size := g.Size
	if size <= 0 {
		size = defaultQRSize
	}
	return qrcode.Encode(g.Link(orderID), qrcode.Medium, size)
}

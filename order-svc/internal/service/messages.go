package service

import (
	"bytes"
	"fmt"
	"html/template"

	"feastly/order-svc/internal/domain"
)

const unknownItemName = "Unknown Item"

type messageData struct {
	UserName        string
	RestaurantName  string
	Items           []string
	TotalPrice      string
	ReservationTime string
}

type message struct {
	subject string
	body    *template.Template
}

func newMessage(subject, body string) message {
	return message{
		subject: subject,
		body:    template.Must(template.New(subject).Parse(body)),
	}
}

func (m message) render(data messageData) (string, string, error) {
	var buf bytes.Buffer
	if err := m.body.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("render %q: %w", m.subject, err)
	}
	return m.subject, buf.String(), nil
}

const qrImage = `<p><img src="cid:qrcode@feastly" alt="QR code"></p>`

const orderDetails = `<p><b>Order Details:</b></p>
<p>{{range $i, $item := .Items}}{{if $i}}<br>{{end}}- {{$item}}{{end}}</p>
<p><b>Total Price:</b> ${{.TotalPrice}}</p>`

var orderPlacedMessage = newMessage("Order Confirmation - Feastly", `<p>Hello <b>{{.UserName}}</b>,</p>
<p>Your order at <b>{{.RestaurantName}}</b> has been placed successfully!</p>
`+orderDetails+`
<p>Please show the attached QR code when receiving your order.</p>
`+qrImage+`
<p>Thank you for choosing Feastly!</p>`)

var orderStatusMessages = map[domain.OrderStatus]message{
	domain.OrderConfirmed: newMessage("Your Order is Confirmed!", `<p>Hello <b>{{.UserName}}</b>,</p>
<p>Your order at <b>{{.RestaurantName}}</b> has been confirmed!</p>
`+orderDetails+`
<p>Your food will be on its way soon. Please have your QR code ready when receiving the order.</p>
`+qrImage),
	domain.OrderDelivered: newMessage("Your Order has been Delivered!", `<p>Hello <b>{{.UserName}}</b>,</p>
<p>Your order at <b>{{.RestaurantName}}</b> has been delivered. We hope you enjoy your meal!</p>
`+orderDetails+`
<p>Thank you for ordering with Feastly! If you enjoyed your meal, leave a review!</p>
`+qrImage),
	domain.OrderCancelled: newMessage("Your Order has been Cancelled", `<p>Hello <b>{{.UserName}}</b>,</p>
<p>Your order at <b>{{.RestaurantName}}</b> has been cancelled.</p>
<p>If this was a mistake, you can place another order anytime.</p>
<p>Thank you for choosing Feastly!</p>
`+qrImage),
}

var reservationBookedMessage = newMessage("Reservation Successfully Created", `<p>Hello <strong>{{.UserName}}</strong>,</p>
<p>Your reservation at <strong>{{.RestaurantName}}</strong> is successfully booked for <strong>{{.ReservationTime}}</strong>.</p>
<p>We will notify you once it is confirmed.</p>
`+qrImage+`
<p>Thank you for choosing us!</p>`)

var reservationStatusMessages = map[domain.ReservationStatus]message{
	domain.ReservationConfirmed: newMessage("Your Reservation is Confirmed!", `<p>Hello <strong>{{.UserName}}</strong>,</p>
<p>Your reservation at <strong>{{.RestaurantName}}</strong> is confirmed for <strong>{{.ReservationTime}}</strong>.</p>
<p>Show the attached QR code at the restaurant.</p>
`+qrImage+`
<p>See you soon!</p>`),
	domain.ReservationCancelled: newMessage("Reservation Cancelled", `<p>Hello <strong>{{.UserName}}</strong>,</p>
<p>Your reservation at <strong>{{.RestaurantName}}</strong> has been <strong>cancelled</strong>.</p>
<p>If this was a mistake, please make another reservation.</p>
`+qrImage),
}

// describeItems renders "Name (xN)" lines, substituting unknownItemName for
// ids that no longer resolve to a menu item.
func describeItems(items []domain.OrderItem, names map[string]string) []string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		name, ok := names[item.ID]
		if !ok || name == "" {
			name = unknownItemName
		}
		lines = append(lines, fmt.Sprintf("%s (x%d)", name, item.Quantity))
	}
	return lines
}

func itemIDs(items []domain.OrderItem) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

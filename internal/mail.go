package internal

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"text/template"

	"github.com/mailgun/mailgun-go/v4"
	"github.com/zeroshade/ferryapi/types"
)

func mailgunDomain(conf *types.OperatorConfig) string {
	pieces := strings.Split(conf.EmailFrom, "@")
	if len(pieces) < 2 {
		return "mg.ferryops.mv"
	}
	return "mg." + pieces[1]
}

// PassesLink is the public download URL for a booking's boarding passes.
func PassesLink(host, operator, code string) string {
	return fmt.Sprintf("https://%s/api/%s/bookings/%s/passes", host, operator, code)
}

var notifyTmpl = template.Must(template.New("notify").Parse(`
	Seats Booked By: {{ .Name }} <a href='mailto:{{ .Email }}'>{{ .Email }}</a>
	<br /><br />
	<ul>
	<li>{{ .Seats }} seat(s), {{ .Trip }}</li>
	</ul>`))

var clientTmpl = template.Must(template.New("client").Parse(`
	<br /><br />
	Seats Booked:<br/>
	<ul>
	<li>{{ .Seats }} seat(s), booking code {{ .Code }}</li>
	</ul>
	<br />
	You can download your boarding passes here: <a href='{{ .Link }}'>Click Here</a>
	<br />`))

func notifyMailBody(booking *types.Booking, tripDesc string) (string, error) {
	var tpl bytes.Buffer
	err := notifyTmpl.Execute(&tpl, map[string]interface{}{
		"Name":  booking.Name,
		"Email": booking.Email,
		"Seats": booking.Seats,
		"Trip":  tripDesc,
	})
	return tpl.String(), err
}

func clientMailBody(host string, booking *types.Booking) (string, error) {
	var tpl bytes.Buffer
	err := clientTmpl.Execute(&tpl, map[string]interface{}{
		"Seats": booking.Seats,
		"Code":  booking.Code,
		"Link":  PassesLink(host, booking.OperatorID, booking.Code),
	})
	return tpl.String(), err
}

// SendNotifyEmail tells the operator's staff address about a booked or paid
// trip.
func SendNotifyEmail(apiKey string, conf *types.OperatorConfig, booking *types.Booking, tripDesc string) error {
	log.Println("Send Notify Mail:", booking.Code, conf.EmailFrom)
	body, err := notifyMailBody(booking, tripDesc)
	if err != nil {
		return err
	}

	mg := mailgun.NewMailgun(mailgunDomain(conf), apiKey)
	subject := "Seats Booked"
	m := mg.NewMessage("donotreply@ferryops.mv", subject, body,
		fmt.Sprintf("%s <%s>", conf.EmailName, conf.EmailFrom))
	m.SetHtml(body)

	resp, id, err := mg.Send(context.Background(), m)
	log.Println("Response: ", resp, id, err)
	return err
}

// SendClientMail sends the passenger their confirmation with the boarding
// pass download link.
func SendClientMail(apiKey, host, email string, booking *types.Booking, conf *types.OperatorConfig) (string, error) {
	log.Println("Send Client Mail:", conf.EmailFrom, email, booking.Code)
	body, err := clientMailBody(host, booking)
	if err != nil {
		return "", err
	}

	mg := mailgun.NewMailgun(mailgunDomain(conf), apiKey)
	subject := "Ferry Seats Booked"
	m := mg.NewMessage(fmt.Sprintf("%s <%s>", conf.EmailName, conf.EmailFrom),
		subject, conf.EmailContent+body,
		fmt.Sprintf("%s <%s>", booking.Name, email))
	m.SetHtml(conf.EmailContent + body)

	resp, id, err := mg.Send(context.Background(), m)
	log.Println("Send Email: ", subject, booking.Name, email)
	log.Println("Response: ", resp, id, err)
	return resp, err
}

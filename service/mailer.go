package application

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"
	"rentride_service/domain"
)

type Mailer interface {
	SendBookingConfirmation(to string, booking *domain.Booking) error
}

type GomailSender struct {
	server   string
	port     int
	email    string
	password string
}

func NewGomailSender(server string, port int, email, password string) *GomailSender {
	return &GomailSender{
		server:   server,
		port:     port,
		email:    email,
		password: password,
	}
}

func (sender *GomailSender) SendBookingConfirmation(to string, booking *domain.Booking) error {
	message := gomail.NewMessage()
	message.SetHeader("From", sender.email)
	message.SetHeader("To", to)
	message.SetHeader("Subject", "Your RentRide booking is confirmed")

	bodyString := fmt.Sprintf("Your booking %s is confirmed.\nPeriod: %s - %s\nTotal: %.2f",
		booking.ID.Hex(),
		booking.StartDate.Format("2006-01-02"),
		booking.EndDate.Format("2006-01-02"),
		booking.TotalPrice)
	message.SetBody("text", bodyString)

	client := gomail.NewDialer(sender.server, sender.port, sender.email, sender.password)

	if err := client.DialAndSend(message); err != nil {
		log.Printf("failed to send confirmation mail because of: %s", err)
		return err
	}

	return nil
}

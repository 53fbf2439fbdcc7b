package notifier

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/obras-paraguay/natacion-api/internal/models"
)

type Notifier interface {
	NotifyReservation(record models.ReservationRecord) error
}

// DiscordNotifier posts each new pre-reservation to the staff channel, so
// the front desk sees bookings without keeping the panel open.
type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordNotifier(session *discordgo.Session, channelID string) *DiscordNotifier {
	return &DiscordNotifier{
		session:   session,
		channelID: channelID,
	}
}

func (n *DiscordNotifier) NotifyReservation(record models.ReservationRecord) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	emailStr := record.Email
	if emailStr == "" {
		emailStr = "No provisto"
	}

	message := fmt.Sprintf("🏊 **Nueva Pre-Reserva**\n**Alumno/a:** %s (DNI %s)\n**Clase:** %s · %s\n**Horario:** %s (%s)\n**WhatsApp:** %s\n**Email:** %s",
		record.StudentFullName,
		record.DNI,
		record.ClassCategory,
		record.ClassLevel,
		record.ClassTime,
		record.ClassDays,
		record.Phone,
		emailStr,
	)

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		log.Printf("Failed to send discord message: %v", err)
		return err
	}

	return nil
}

package notifier

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/uai-coreday/coreday-api/internal/config"
)

// Notifier announces bulk admin actions to the staff channel. Handlers treat
// a nil Notifier as "notifications disabled".
type Notifier interface {
	NotifyImport(count int) error
	NotifyWipe(personas int64) error
}

type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordNotifier(cfg *config.Config) (*DiscordNotifier, error) {
	if cfg.DiscordBotToken == "" || cfg.DiscordNotificationsChannelID == "" {
		return nil, fmt.Errorf("discord bot token or channel ID not configured")
	}

	session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
	if err != nil {
		return nil, err
	}

	return &DiscordNotifier{
		session:   session,
		channelID: cfg.DiscordNotificationsChannelID,
	}, nil
}

func (n *DiscordNotifier) NotifyImport(count int) error {
	message := fmt.Sprintf("📥 **Nómina actualizada**\nSe cargaron %d personas desde planilla.", count)
	_, err := n.session.ChannelMessageSend(n.channelID, message)
	return err
}

func (n *DiscordNotifier) NotifyWipe(personas int64) error {
	message := fmt.Sprintf("🗑️ **Lista borrada**\nSe eliminaron %d personas y sus asistencias.", personas)
	_, err := n.session.ChannelMessageSend(n.channelID, message)
	return err
}

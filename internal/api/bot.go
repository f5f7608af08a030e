package telegram

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"ball-tracker/internal/domain/entity"
	"ball-tracker/internal/domain/port"
)

const (
	msgHeader    = "🎾 Обработка видео завершена"
	msgNoRecords = "•  нет интервалов длиннее порога"
	msgStopped   = "⏹ остановлено вручную"
)

// sender часть BotAPI, которой пользуется Notifier
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Notifier отправляет сводку по квадрантам в Telegram-чат
type Notifier struct {
	api         sender
	chatID      int64
	attachments []string
}

// NewNotifier создаёт нотификатор. attachments отправляются документами после сводки,
// несуществующие файлы пропускаются.
func NewNotifier(token string, chatID int64, attachments ...string) (*Notifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Info().Str("account", api.Self.UserName).Msg("telegram authorized")

	return newNotifier(api, chatID, attachments...), nil
}

func newNotifier(api sender, chatID int64, attachments ...string) *Notifier {
	return &Notifier{api: api, chatID: chatID, attachments: attachments}
}

// Notify отправляет сводку и вложения
func (n *Notifier) Notify(ctx context.Context, reports []*entity.QuadrantReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := n.api.Send(tgbotapi.NewMessage(n.chatID, FormatReport(reports))); err != nil {
		return fmt.Errorf("send report: %w", err)
	}

	for _, path := range n.attachments {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		doc := tgbotapi.NewDocument(n.chatID, tgbotapi.FilePath(path))
		if _, err := n.api.Send(doc); err != nil {
			return fmt.Errorf("send %s: %w", path, err)
		}
	}

	return nil
}

// FormatReport текст сводки
func FormatReport(reports []*entity.QuadrantReport) string {
	var b strings.Builder
	b.WriteString(msgHeader)
	b.WriteString("\n")

	for _, r := range reports {
		if r == nil {
			continue
		}
		fmt.Fprintf(&b, "\n📍 Квадрант %d: %d кадров, %.2f fps, появлений %d\n", r.Quadrant, r.Frames, r.FPS, r.Entries)

		if len(r.Records) == 0 {
			b.WriteString(msgNoRecords)
			b.WriteString("\n")
		}
		for _, rec := range r.Records {
			fmt.Fprintf(&b, "•  %d-%d с\n", rec.Entry, rec.Exit)
		}

		if colors := formatColors(r.Colors); colors != "" {
			fmt.Fprintf(&b, "🎨 %s\n", colors)
		}
		if r.Stopped {
			b.WriteString(msgStopped)
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// formatColors метки по убыванию частоты
func formatColors(colors map[entity.ColorLabel]int) string {
	labels := make([]entity.ColorLabel, 0, len(colors))
	for l := range colors {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool {
		if colors[labels[i]] != colors[labels[j]] {
			return colors[labels[i]] > colors[labels[j]]
		}
		return labels[i] < labels[j]
	})

	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		parts = append(parts, fmt.Sprintf("%s×%d", l, colors[l]))
	}
	return strings.Join(parts, ", ")
}

var _ port.ReportNotifier = (*Notifier)(nil)

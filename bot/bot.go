package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"

	"icecream-telegram/config"
	"icecream-telegram/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Bot struct {
	api   *tgbotapi.BotAPI
	cfg   *config.Config
	admin int64

	histories   map[int64]*services.History // one session per chat
	historiesMu sync.RWMutex

	selections   map[int64]*selection // in-progress picks per user
	selectionsMu sync.RWMutex
}

func New(cfg *config.Config, adminUserID int64) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:        api,
		cfg:        cfg,
		admin:      adminUserID,
		histories:  make(map[int64]*services.History),
		selections: make(map[int64]*selection),
	}, nil
}

// history returns the chat's session history, creating it on first use.
func (b *Bot) history(chatID int64) *services.History {
	b.historiesMu.RLock()
	h := b.histories[chatID]
	b.historiesMu.RUnlock()
	if h != nil {
		return h
	}
	b.historiesMu.Lock()
	defer b.historiesMu.Unlock()
	if h = b.histories[chatID]; h == nil {
		h = services.NewHistory(b.cfg.Pricing)
		b.histories[chatID] = h
	}
	return h
}

func (b *Bot) setBotCommands() error {
	cfg := tgbotapi.SetMyCommandsConfig{
		Commands: []tgbotapi.BotCommand{
			{Command: "start", Description: "Welcome screen"},
			{Command: "order", Description: "Build an ice cream"},
			{Command: "orders", Description: "My orders this session"},
		},
	}
	_, err := b.api.Request(cfg)
	return err
}

func (b *Bot) Start() {
	// Register bot command menu (Telegram client shows these in the input menu)
	_ = b.setBotCommands()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.CallbackQuery != nil {
			b.handleCallback(update.CallbackQuery)
			continue
		}
		if update.Message == nil {
			continue
		}
		msg := update.Message
		userID := msg.From.ID
		text := strings.TrimSpace(msg.Text)

		switch {
		case text == "/start":
			b.handleStart(msg.Chat.ID)
		case text == "/order":
			b.startSelection(msg.Chat.ID, userID)
		case text == "/orders":
			b.handleOrders(msg.Chat.ID)
		case strings.HasPrefix(text, "/addflavor"):
			b.handleAddFlavor(msg.Chat.ID, userID, text)
		case strings.HasPrefix(text, "/addtopping"):
			b.handleAddTopping(msg.Chat.ID, userID, text)
		case strings.HasPrefix(text, "/delflavor"):
			b.handleDelFlavor(msg.Chat.ID, userID, text)
		case strings.HasPrefix(text, "/deltopping"):
			b.handleDelTopping(msg.Chat.ID, userID, text)
		case text == "/stats":
			b.handleStats(msg.Chat.ID, userID)
		}
	}
}

func (b *Bot) handleCallback(cq *tgbotapi.CallbackQuery) {
	chatID := cq.Message.Chat.ID
	userID := cq.From.ID
	data := cq.Data

	b.api.Request(tgbotapi.NewCallback(cq.ID, ""))

	switch {
	case data == "new":
		b.startSelection(chatID, userID)
	case strings.HasPrefix(data, "opt:"):
		b.handleOption(chatID, userID, strings.TrimPrefix(data, "opt:"))
	case strings.HasPrefix(data, "size:"):
		b.handleSize(chatID, userID, strings.TrimPrefix(data, "size:"))
	case strings.HasPrefix(data, "flavor:"):
		b.handleFlavor(chatID, userID, strings.TrimPrefix(data, "flavor:"))
	case strings.HasPrefix(data, "topping:"):
		b.handleTopping(chatID, userID, strings.TrimPrefix(data, "topping:"))
	case data == "add":
		b.handleAdd(chatID, userID)
	case data == "cancel":
		b.clearSelection(userID)
		b.handleStart(chatID)
	case data == "place":
		b.handlePlace(chatID)
	case data == "orders":
		b.handleOrders(chatID)
	}
}

func (b *Bot) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("send error: %v", err)
	}
}

func (b *Bot) sendWithInline(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("send error: %v", err)
	}
}

func mainKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🍦 Build an ice cream", "new"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🧾 Place order", "place"),
			tgbotapi.NewInlineKeyboardButtonData("📋 My orders", "orders"),
		),
	)
}

func (b *Bot) handleStart(chatID int64) {
	text := "Welcome to the ice cream parlor!\nPick a serving, a size, a flavor and a topping, then place your order."
	b.sendWithInline(chatID, text, mainKeyboard())
}

// handleAddFlavor handles `/addflavor Name` (admin only).
func (b *Bot) handleAddFlavor(chatID int64, userID int64, text string) {
	if userID != b.admin {
		return
	}
	name := strings.TrimSpace(strings.TrimPrefix(text, "/addflavor"))
	if name == "" {
		b.send(chatID, "Usage: /addflavor Name")
		return
	}
	id, err := services.AddFlavor(context.Background(), name)
	if err != nil {
		b.send(chatID, "Error: "+err.Error())
		return
	}
	b.send(chatID, fmt.Sprintf("Flavor #%d %q added.", id, name))
}

// handleAddTopping handles `/addtopping Name Price` (admin only).
func (b *Bot) handleAddTopping(chatID int64, userID int64, text string) {
	if userID != b.admin {
		return
	}
	fields := strings.Fields(strings.TrimPrefix(text, "/addtopping"))
	if len(fields) < 2 {
		b.send(chatID, "Usage: /addtopping Name Price")
		return
	}
	price, err := strconv.ParseFloat(fields[len(fields)-1], 64)
	if err != nil {
		b.send(chatID, "Usage: /addtopping Name Price")
		return
	}
	name := strings.Join(fields[:len(fields)-1], " ")
	id, err := services.AddTopping(context.Background(), name, price)
	if err != nil {
		b.send(chatID, "Error: "+err.Error())
		return
	}
	b.send(chatID, fmt.Sprintf("Topping #%d %q added at $%.2f.", id, name, price))
}

// parseIDArg extracts the numeric id from a command like "/delflavor 3".
func parseIDArg(text, cmd string) (int64, error) {
	arg := strings.TrimSpace(strings.TrimPrefix(text, cmd))
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// handleDelFlavor handles `/delflavor ID` (admin only).
func (b *Bot) handleDelFlavor(chatID int64, userID int64, text string) {
	if userID != b.admin {
		return
	}
	id, err := parseIDArg(text, "/delflavor")
	if err != nil {
		b.send(chatID, "Usage: /delflavor ID")
		return
	}
	if err := services.DeleteFlavor(context.Background(), id); err != nil {
		b.send(chatID, "Error: "+err.Error())
		return
	}
	b.send(chatID, fmt.Sprintf("Flavor #%d deleted.", id))
}

// handleDelTopping handles `/deltopping ID` (admin only).
func (b *Bot) handleDelTopping(chatID int64, userID int64, text string) {
	if userID != b.admin {
		return
	}
	id, err := parseIDArg(text, "/deltopping")
	if err != nil {
		b.send(chatID, "Usage: /deltopping ID")
		return
	}
	if err := services.DeleteTopping(context.Background(), id); err != nil {
		b.send(chatID, "Error: "+err.Error())
		return
	}
	b.send(chatID, fmt.Sprintf("Topping #%d deleted.", id))
}

func (b *Bot) handleStats(chatID int64, userID int64) {
	if userID != b.admin {
		return
	}
	stats, err := b.history(chatID).Stats()
	if err != nil {
		b.send(chatID, "Error: "+err.Error())
		return
	}
	text := fmt.Sprintf(
		"Session stats\nOrders: %d\nGross: %.2f\nService charge: %.2f\nNet: %.2f",
		stats.OrdersCount, stats.GrossRevenue, stats.ServiceCharge, stats.NetRevenue,
	)
	b.send(chatID, text)
}

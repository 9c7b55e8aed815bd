package bot

import (
	"context"
	"fmt"
	"log"
	"time"

	"icecream-telegram/models"
	"icecream-telegram/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// selection is one user's in-progress picks. IDs refer to catalog rows;
// toppingID "none" means the user explicitly declined a topping.
type selection struct {
	Option    models.ServingOption
	Size      models.Size
	FlavorID  string
	ToppingID string
}

func (b *Bot) getSelection(userID int64) *selection {
	b.selectionsMu.RLock()
	defer b.selectionsMu.RUnlock()
	return b.selections[userID]
}

func (b *Bot) setSelection(userID int64, sel *selection) {
	b.selectionsMu.Lock()
	b.selections[userID] = sel
	b.selectionsMu.Unlock()
}

func (b *Bot) clearSelection(userID int64) {
	b.selectionsMu.Lock()
	delete(b.selections, userID)
	b.selectionsMu.Unlock()
}

func (b *Bot) startSelection(chatID int64, userID int64) {
	b.setSelection(userID, &selection{})
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🍦 Cone", "opt:cone"),
			tgbotapi.NewInlineKeyboardButtonData("🥤 Cup", "opt:cup"),
		),
	)
	b.sendWithInline(chatID, "Cone or cup?", kb)
}

func (b *Bot) handleOption(chatID int64, userID int64, opt string) {
	sel := b.getSelection(userID)
	if sel == nil {
		b.startSelection(chatID, userID)
		return
	}
	switch opt {
	case string(models.OptionCone):
		sel.Option = models.OptionCone
	case string(models.OptionCup):
		sel.Option = models.OptionCup
	default:
		b.send(chatID, "Unknown serving option, please start over.")
		b.startSelection(chatID, userID)
		return
	}
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Small", "size:small"),
			tgbotapi.NewInlineKeyboardButtonData("Medium", "size:medium"),
			tgbotapi.NewInlineKeyboardButtonData("Large", "size:large"),
		),
	)
	b.sendWithInline(chatID, "Which size?", kb)
}

func (b *Bot) handleSize(chatID int64, userID int64, size string) {
	sel := b.getSelection(userID)
	if sel == nil {
		b.startSelection(chatID, userID)
		return
	}
	switch size {
	case string(models.SizeSmall):
		sel.Size = models.SizeSmall
	case string(models.SizeMedium):
		sel.Size = models.SizeMedium
	case string(models.SizeLarge):
		sel.Size = models.SizeLarge
	default:
		b.send(chatID, "Unknown size, please start over.")
		b.startSelection(chatID, userID)
		return
	}

	flavors, err := services.ListFlavors(context.Background())
	if err != nil {
		log.Printf("list flavors: %v", err)
		b.send(chatID, "Could not load the flavor list, please try again.")
		return
	}
	if len(flavors) == 0 {
		b.send(chatID, "No flavors on the menu yet, please come back later.")
		return
	}
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, f := range flavors {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(f.Name, "flavor:"+f.ID),
		))
	}
	b.sendWithInline(chatID, "Pick a flavor:", tgbotapi.NewInlineKeyboardMarkup(rows...))
}

func (b *Bot) handleFlavor(chatID int64, userID int64, flavorID string) {
	sel := b.getSelection(userID)
	if sel == nil {
		b.startSelection(chatID, userID)
		return
	}
	sel.FlavorID = flavorID

	toppings, err := services.ListToppings(context.Background())
	if err != nil {
		log.Printf("list toppings: %v", err)
		b.send(chatID, "Could not load the topping list, please try again.")
		return
	}
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, t := range toppings {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("%s — $%.2f", t.Name, t.Price),
				"topping:"+t.ID,
			),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("No topping", "topping:none"),
	))
	b.sendWithInline(chatID, "Any topping?", tgbotapi.NewInlineKeyboardMarkup(rows...))
}

func (b *Bot) handleTopping(chatID int64, userID int64, toppingID string) {
	sel := b.getSelection(userID)
	if sel == nil {
		b.startSelection(chatID, userID)
		return
	}
	sel.ToppingID = toppingID

	domainSel, err := b.resolveSelection(context.Background(), sel)
	if err != nil {
		b.send(chatID, "Error: "+err.Error())
		return
	}
	it, err := services.BuildItem(domainSel, b.cfg.Pricing.BasePrice)
	if err != nil {
		b.send(chatID, err.Error())
		return
	}
	desc, err := services.ItemDescription(it)
	if err != nil {
		b.send(chatID, "Error: "+err.Error())
		return
	}
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Add to order", "add"),
			tgbotapi.NewInlineKeyboardButtonData("❌ Cancel", "cancel"),
		),
	)
	b.sendWithInline(chatID, "Your ice cream:\n"+desc, kb)
}

// resolveSelection loads the picked catalog rows. Missing option, size
// or flavor pass through as zero values so validation in the services
// layer produces the user-facing message.
func (b *Bot) resolveSelection(ctx context.Context, sel *selection) (models.Selection, error) {
	out := models.Selection{Option: sel.Option, Size: sel.Size}
	if sel.FlavorID != "" {
		f, err := services.GetFlavor(ctx, sel.FlavorID)
		if err != nil {
			return models.Selection{}, fmt.Errorf("flavor not found: %w", err)
		}
		out.Flavors = append(out.Flavors, *f)
	}
	if sel.ToppingID != "" && sel.ToppingID != "none" {
		t, err := services.GetTopping(ctx, sel.ToppingID)
		if err != nil {
			return models.Selection{}, fmt.Errorf("topping not found: %w", err)
		}
		out.Toppings = append(out.Toppings, *t)
	}
	return out, nil
}

// handleAdd commits the current selection as a new single-item order.
// Each add creates its own order; "place" prints them all.
func (b *Bot) handleAdd(chatID int64, userID int64) {
	sel := b.getSelection(userID)
	if sel == nil {
		b.send(chatID, "Nothing selected yet, please start over.")
		b.startSelection(chatID, userID)
		return
	}
	domainSel, err := b.resolveSelection(context.Background(), sel)
	if err != nil {
		b.send(chatID, "Error: "+err.Error())
		return
	}
	o, err := b.history(chatID).Place(domainSel)
	if err != nil {
		b.send(chatID, err.Error())
		return
	}
	b.clearSelection(userID)

	total, err := services.OrderTotal(o)
	if err != nil {
		b.send(chatID, "Error: "+err.Error())
		return
	}
	b.sendWithInline(chatID,
		fmt.Sprintf("Order #%d added — $%.2f.", o.Number, total),
		mainKeyboard(),
	)
}

// handlePlace renders the session receipt, shows it and appends it to
// the receipt log. A log failure is reported but the order stands.
func (b *Bot) handlePlace(chatID int64) {
	h := b.history(chatID)
	if h.Empty() {
		b.send(chatID, "No orders yet — build an ice cream first.")
		return
	}
	receipt, err := h.Receipt()
	if err != nil {
		b.send(chatID, "Error: "+err.Error())
		return
	}
	b.send(chatID, receipt)
	if err := services.AppendReceiptLog(services.ReceiptLogFile, receipt, time.Now()); err != nil {
		log.Printf("receipt log: %v", err)
		b.send(chatID, "Could not write the receipt log: "+err.Error())
	}
}

func (b *Bot) handleOrders(chatID int64) {
	h := b.history(chatID)
	if h.Empty() {
		b.send(chatID, "No orders this session.")
		return
	}
	text := "Your orders:\n"
	for _, o := range h.Orders() {
		net, err := services.OrderNetTotal(o, b.cfg.Pricing.ServiceChargeRate)
		if err != nil {
			b.send(chatID, "Error: "+err.Error())
			return
		}
		text += fmt.Sprintf("#%d — %s — $%.2f\n", o.Number, o.CreatedAt.Format(services.ReceiptDateFormat), net)
	}
	b.send(chatID, text)
}

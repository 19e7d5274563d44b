package services

import "strings"

// ChatFallback is shown when no tip matches the message.
const ChatFallback = "I'm sorry, I don't have information on that. Try asking about diet, hydration, exercise or morning sickness."

var pregnancyTips = map[string]string{
	"hello":            "Hello! How can I assist you today? I'm here to provide tips and guidance to support you during your pregnancy journey.",
	"morning sickness": "Try eating small, frequent meals and avoiding spicy foods. Ginger tea or crackers may help.",
	"hydration":        "It’s important to drink at least 8-10 glasses of water daily to stay hydrated during pregnancy.",
	"exercise":         "Staying active with prenatal-safe exercises like swimming, stretching, or walking can boost your energy and reduce pregnancy discomfort. Visit the 'Kegel exercises' section to get more details.",
	"backpain":         "Maintain good posture, use a pregnancy pillow while sleeping, and consider gentle stretching exercises.",
	"diet":             "Eat a balanced diet with fruits, vegetables, whole grains, lean protein, and prenatal vitamins.",
	"weight tracker":   "Monitor your pregnancy weight with a tracking tool to ensure healthy weight gain based on your trimester. Speak to your doctor if you notice significant changes.",
	"doctors":          "Our expert gynecologists are here to support your pregnancy journey. Visit the 'Top Gynecologists' section to book an appointment.",
	"protiens":         "Proteins are crucial during pregnancy for your baby’s growth. Include lean meats, eggs, dairy products, beans, nuts, and seeds in your diet. Visit 'Nuturenest' for more details.",
	"calendar":         "Keep track of your pregnancy milestones with a calendar. It helps you plan appointments, monitor trimester changes, and prepare for your baby’s arrival.",
	"fatigue":          "Feeling tired is common during pregnancy. Rest when needed, eat iron-rich foods, and stay hydrated to maintain your energy levels.",
	"constipation":     "Increase your fiber intake with fruits, vegetables, and whole grains, and drink plenty of water to ease constipation.",
	"heartburn":        "To reduce heartburn, avoid large meals, spicy foods, and eating right before bedtime. Sleeping with your upper body slightly elevated may also help.",
	"swelling":         "Mild swelling in the feet and ankles is normal. Rest with your feet elevated",
}

// ChatHelper answers fixed keywords with canned pregnancy tips.
type ChatHelper struct {
	tips map[string]string
}

// NewChatHelper returns a helper backed by the built-in tip table.
func NewChatHelper() *ChatHelper {
	return &ChatHelper{tips: pregnancyTips}
}

// Respond looks up the lower-cased message. The whole message must equal a keyword;
// ok is false when nothing matches.
func (h *ChatHelper) Respond(message string) (reply string, ok bool) {
	reply, ok = h.tips[strings.ToLower(message)]
	return reply, ok
}

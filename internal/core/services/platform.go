package services

import "strings"

// PlatformLabels сопоставляет код платформы с фразой для отчета.
var PlatformLabels = map[string]string{
	"TELEGRAM": "на Telegram-каналі",
	"YOUTUBE":  "на Youtube-каналі",
	"WEB":      "на Веб-сторінці",
	"FACEBOOK": "на Facebook-сторінці",
	"TWITTER":  "у соціальній мережі Х",
	"VK":       "у соціальній мережі VK",
	"TIKTOK":   "на TikTok-сторінці",
}

// ResolvePlatform возвращает фразу для кода платформы.
// Сравнение чувствительно к регистру; неизвестный код возвращается как есть (без пробелов по краям).
func ResolvePlatform(code string) string {
	key := strings.TrimSpace(code)
	if label, ok := PlatformLabels[key]; ok {
		return label
	}
	return key
}

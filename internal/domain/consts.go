package domain

// Channel and scheduling defaults, overridable through the environment.
const (
	DefaultChannel     = "@discountcoupononline"
	DefaultPublishCron = "0 * * * *" // hourly, at minute 0
	DefaultTimezone    = "Africa/Algiers"
)

// CaptionTemplate is the exact caption posted with every coupon image.
// The verbs are filled with title, description, code, countries, note and
// link, in that order. The image URL is not part of the caption, it becomes
// the photo itself.
const CaptionTemplate = `🎉 كوبون %s

🔥 %s

✅ الكوبون: %s

🌍 صالح لـ: %s

📌 ملاحظة: %s

🛒 رابط الشراء: %s

💎 لمزيد من الكوبونات:
https://www.discountcoupon.online`

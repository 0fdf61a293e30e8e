package bot

// Static reply texts sent by the webhook handler.
const (
	welcomeMessage = "🎬 Hi! I can save videos from Pinterest for you.\n\n" +
		"Just send me a link to a video, for example:\n" +
		"https://pinterest.com/pin/123456789/\n\n" +
		"And I'll send the video back!"

	downloadingMessage = "⏳ Downloading the video..."

	downloadFailedMessage = "❌ Couldn't download that video.\n" +
		"Check the link or try again later."

	usageHintMessage = "⚠️ Send me a Pinterest video link.\n" +
		"Example: https://pinterest.com/pin/123456789/"
)

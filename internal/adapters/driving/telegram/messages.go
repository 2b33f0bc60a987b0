package telegram

// User-facing texts.
const (
	msgWelcome = "👋 Hello! I can find documents by name or content.\n" +
		"Pick a category, start a search or upload a file:"
	msgAccessDeniedStart = "❌ Access denied! You are not on the list of allowed users."
	msgAccessDenied      = "❌ Access denied!"
	msgSearchPrompt      = "🔎 Enter a query (a file name or part of its content):"
	msgUploadPrompt      = "📤 Send me a file and I will save it!"
	msgFound             = "✅ Documents found:"
	msgNothingFound      = "❌ Nothing found!"
	msgChooseAction      = "Choose an action:"
	msgFileNotFound      = "❌ File not found!"
	msgFileUnavailable   = "❌ The file could not be sent, please try again later."
	msgUploadSaved       = "✅ File '%s' saved!"
	msgUploadFailed      = "❌ The file could not be saved."
	msgUploadTooLarge    = "❌ The file is too large, the limit is %d MB."
	msgUploadNoName      = "❌ The file has no usable name."
	msgUnknownAction     = "❌ That button is no longer valid."
	msgSearchFailed      = "❌ Search is unavailable right now, please try again later."
)

// Button labels.
const (
	labelSearch = "🔍 Search"
	labelUpload = "📤 Upload file"
	labelFile   = "📄 "
)

package presentation

const (
	IDParam          = "id"
	SessionIDField   = "sessionId"
	FileField        = "file"
	PrefixQuery      = "prefix"
	TypeKey          = "Content-Type"
	CacheControlKey  = "Cache-Control"
	DispositionKey   = "Content-Disposition"
	ImageWidthKey    = "X-Image-Width"
	ImageHeightKey   = "X-Image-Height"
	CacheControlLong = "public, max-age=31536000"
	AdminUserKey     = "admin"
)

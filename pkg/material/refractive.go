package material

// Refractive indices of common media
const (
	Vacuum     = 1.0
	Air        = 1.00029
	Water      = 1.333
	GlassIndex = 1.5
	Diamond    = 2.417
)

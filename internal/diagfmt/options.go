package diagfmt

// PathMode selects how file paths appear in diagnostics.
type PathMode uint8

const (
	PathModeAuto PathMode = iota // длинные абсолютные пути сокращаются до имени файла
	PathModeAbsolute
	PathModeRelative // относительно BaseDir
	PathModeBasename
)

type PrettyOpts struct {
	Color     bool
	Context   int8 // строк исходника вокруг ошибки
	PathMode  PathMode
	BaseDir   string
	ShowNotes bool
}

type JSONOpts struct {
	IncludePositions bool
	IncludeNotes     bool
	PathMode         PathMode
	BaseDir          string
	// Max обрезает вывод; сама Bag не меняется.
	Max int
}

// TokenOpts controls token listings. Width caps the lexeme column of the
// pretty listing in terminal cells; 0 means no cap.
type TokenOpts struct {
	Color bool
	Width int
}

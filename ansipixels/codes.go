package ansipixels

// Ansi codes.
const (
	Bold    = "\x1b[1m"
	Dim     = "\x1b[2m"
	Reverse = "\x1b[7m"

	Reset = "\033[0m"

	// Ctrl-C and Ctrl-D when read in raw mode.
	CtrlC = 3
	CtrlD = 4
	// Backspace as sent by most terminals (DEL) and the older ^H.
	Backspace = 127
	CtrlH     = 8
	Escape    = 27
)

// BoxStyle is the set of line drawing strings [AnsiPixels.DrawBox] uses.
type BoxStyle struct {
	TopLeft, TopRight, BottomLeft, BottomRight string
	Horizontal, Vertical                       string
}

var (
	RoundBox  = BoxStyle{"╭", "╮", "╰", "╯", "─", "│"}
	SquareBox = BoxStyle{"┌", "┐", "└", "┘", "─", "│"}
)

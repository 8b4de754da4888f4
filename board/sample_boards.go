package board

// Sample boards used by tests across packages. Each is a MakeBoard
// description, rows top to bottom.

// FlatNineDesc is a flat stack of height four with only the rightmost
// column open. An I piece dropped in the well clears four lines.
var FlatNineDesc = []string{
	"XXXXXXXXX.",
	"XXXXXXXXX.",
	"XXXXXXXXX.",
	"XXXXXXXXX.",
}

// TSlotDesc has a classic T-spin slot at the bottom left: the notch
// under the overhang fits a south-facing T with pivot at column 1.
var TSlotDesc = []string{
	"X.........",
	"....XXXXXX",
	"X.XXXXXXXX",
}

// CheckerDesc is a deliberately holey board for evaluator tests.
var CheckerDesc = []string{
	"X.X.X.X.X.",
	".X.X.X.X.X",
	"X.X.X.X.X.",
	".X.X.X.X.X",
}

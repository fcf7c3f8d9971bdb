package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/stretchyheader/internal/transition"
)

// NavBarAction identifies a bar button.
type NavBarAction int

const (
	NavBarActionNone NavBarAction = iota
	NavBarActionEdit
	NavBarActionRefresh
)

func (a NavBarAction) String() string {
	switch a {
	case NavBarActionEdit:
		return "edit"
	case NavBarActionRefresh:
		return "refresh"
	}
	return "none"
}

// ButtonRect is a clickable area.
type ButtonRect struct {
	X, Y, W, H float64
}

// NavBar is the status strip plus navigation bar drawn over the header. Its
// look is driven entirely by the setters the transition calls.
type NavBar struct {
	Title  string
	Chrome transition.Chrome

	mode           transition.BarMode
	tint           color.Color
	titleAlpha     float64
	statusProgress float64

	editRect, refreshRect ButtonRect

	OnAction func(NavBarAction)
	now      func() time.Time
}

func NewNavBar(title string, chrome transition.Chrome) *NavBar {
	return &NavBar{
		Title:  title,
		Chrome: chrome,
		mode:   transition.BarTransparent,
		tint:   transition.White,
		now:    time.Now,
	}
}

func (nb *NavBar) SetMode(m transition.BarMode)   { nb.mode = m }
func (nb *NavBar) SetTint(c color.Color)          { nb.tint = c }
func (nb *NavBar) SetTitleAlpha(a float64)        { nb.titleAlpha = a }
func (nb *NavBar) SetStatusBarProgress(f float64) { nb.statusProgress = f }
func (nb *NavBar) Mode() transition.BarMode       { return nb.mode }
func (nb *NavBar) Tint() color.Color              { return nb.tint }
func (nb *NavBar) TitleAlpha() float64            { return nb.titleAlpha }
func (nb *NavBar) Height() float64                { return nb.Chrome.NavigationControllerHeight() }
func (nb *NavBar) buttonY() float64               { return nb.Chrome.StatusBarHeight }
func (nb *NavBar) statusColor() color.Color       { return statusColorFor(nb.statusProgress) }

// statusColorFor moves the status text from light to dark content.
func statusColorFor(progress float64) color.Color {
	return transition.BlendColor(ColorWhite, ColorText, progress)
}

// HandleClick reports which bar button, if any, was hit and invokes OnAction.
func (nb *NavBar) HandleClick(mx, my int) NavBarAction {
	action := NavBarActionNone
	switch {
	case hit(mx, my, nb.editRect):
		action = NavBarActionEdit
	case hit(mx, my, nb.refreshRect):
		action = NavBarActionRefresh
	}
	if action != NavBarActionNone && nb.OnAction != nil {
		nb.OnAction(action)
	}
	return action
}

func hit(mx, my int, r ButtonRect) bool {
	return r.W > 0 && PointInRect(mx, my, r.X, r.Y, r.W, r.H)
}

// layout places the bar buttons for a bar of the given width.
func (nb *NavBar) layout(width float64) {
	y, h := nb.buttonY(), nb.Chrome.NavigationBarHeight
	ew, _ := MeasureText("Edit", FontSizeBody)
	nb.editRect = ButtonRect{X: MarginX - 4, Y: y, W: ew + 8, H: h}
	nb.refreshRect = ButtonRect{X: width - MarginX - RefreshIconSize - 4, Y: y, W: RefreshIconSize + 8, H: h}
}

// Draw renders the status strip and the bar across width.
func (nb *NavBar) Draw(dst *ebiten.Image, width float64) {
	nb.layout(width)
	total := nb.Height()

	if nb.mode == transition.BarOpaque {
		vector.DrawFilledRect(dst, 0, 0, float32(width), float32(total), ColorBarBackground, false)
		vector.DrawFilledRect(dst, 0, float32(total), float32(width), 1, ColorBarHairline, false)
	}

	// Status strip
	if sh := nb.Chrome.StatusBarHeight; sh > 0 {
		clock := nb.now().Format("15:04")
		DrawTextCentered(dst, clock, width/2, sh/2, FontSizeStatus, nb.statusColor())
	}

	// Bar buttons
	barMid := nb.buttonY() + nb.Chrome.NavigationBarHeight/2
	_, th := MeasureText("Edit", FontSizeBody)
	DrawText(dst, "Edit", nb.editRect.X+4, barMid-th/2, FontSizeBody, nb.tint)
	r := nb.refreshRect
	drawRefreshIcon(dst, float32(r.X+r.W/2), float32(barMid), RefreshIconSize*0.38, nb.tint)

	// Title view
	if nb.titleAlpha > 0 && nb.Title != "" {
		tw, tth := MeasureBoldText(nb.Title, FontSizeHeadline)
		DrawBoldText(dst, nb.Title, width/2-tw/2, barMid-tth/2, FontSizeHeadline, ColorText, nb.titleAlpha)
	}
}

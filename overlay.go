package yuletide

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween/ease"
)

// Overlay text that is not part of the card content.
const (
	loadingCaption = "SUMMONING WINTER SPIRITS"
	titleText      = "Merry Christmas"
	hintText       = "DRAG TO ROTATE • CLICK TO OPEN"
)

// Overlay timing, in seconds.
const (
	titleFadeDuration = 2.0
	cardOpenDuration  = 0.5
	pulsePeriod       = 2.0
	loadingBarPeriod  = 2.0
)

// overlayLayout is the screen geometry of every interactive overlay widget,
// derived from the viewport size.
type overlayLayout struct {
	Mute  HitCircle
	Card  HitRoundRect
	Image Rect
	Close HitRoundRect

	HeadingY  float64
	SubtitleY float64
	TitleY    float64
	HintY     float64
}

// Layout constants in logical pixels.
const (
	muteMargin     = 24
	muteRadius     = 26
	cardMargin     = 16
	cardRadius     = 24
	cardTextTop    = 16
	headingSize    = 24
	headingLine    = 32
	subtitleSize   = 10
	subtitleLine   = 15
	buttonHeight   = 40
	buttonPadX     = 40
	buttonTextSize = 14
	cardBottomPad  = 32
	titleSize      = 36
	hintSize       = 10
	hintBottom     = 80
)

// cardHeight returns the card height for a card of width w: a square image
// followed by the text block.
func cardHeight(w float64) float64 {
	return w + cardTextTop + headingLine + 4 + subtitleLine + 20 + buttonHeight + cardBottomPad
}

// computeLayout places the overlay widgets for a w×h viewport. closeWidth
// is the measured width of the close button label.
func computeLayout(w, h float64, card CardConfig, closeWidth float64) overlayLayout {
	var l overlayLayout
	l.Mute = HitCircle{
		CenterX: w - muteMargin - muteRadius,
		CenterY: muteMargin + muteRadius,
		Radius:  muteRadius,
	}

	cw := math.Min(card.MaxWidth, w-2*cardMargin)
	if cw < 0 {
		cw = 0
	}
	ch := cardHeight(cw)
	cx := (w - cw) / 2
	cy := (h - ch) / 2
	l.Card = HitRoundRect{X: cx, Y: cy, Width: cw, Height: ch, Radius: cardRadius}
	l.Image = Rect{X: cx, Y: cy, Width: cw, Height: cw}

	l.HeadingY = cy + cw + cardTextTop
	l.SubtitleY = l.HeadingY + headingLine + 4
	bw := closeWidth + 2*buttonPadX
	l.Close = HitRoundRect{
		X:      (w - bw) / 2,
		Y:      l.SubtitleY + subtitleLine + 20,
		Width:  bw,
		Height: buttonHeight,
		Radius: buttonHeight / 2,
	}

	l.TitleY = h * 0.06
	l.HintY = h - hintBottom - hintSize*2
	return l
}

// roundRectPoints returns the outline of a rounded rectangle, clockwise from
// the top-left corner, with segs segments per corner.
func roundRectPoints(x, y, w, h, r float64, segs int) []Vec2 {
	r = math.Max(0, math.Min(r, math.Min(w, h)/2))
	if segs < 1 {
		segs = 1
	}
	corners := [4]struct{ cx, cy, start float64 }{
		{x + r, y + r, math.Pi},           // top-left
		{x + w - r, y + r, 1.5 * math.Pi}, // top-right
		{x + w - r, y + h - r, 0},         // bottom-right
		{x + r, y + h - r, 0.5 * math.Pi}, // bottom-left
	}
	pts := make([]Vec2, 0, 4*(segs+1))
	for _, c := range corners {
		for i := 0; i <= segs; i++ {
			a := c.start + float64(i)/float64(segs)*math.Pi/2
			pts = append(pts, Vec2{X: c.cx + math.Cos(a)*r, Y: c.cy + math.Sin(a)*r})
		}
	}
	return pts
}

// pulse is the soft opacity breathing used by the loading silhouette and the
// hint: 1 at the start of each period, 0.5 at the middle.
func pulse(t, delay float64) float64 {
	return 0.75 + 0.25*math.Cos(2*math.Pi*(t-delay)/pulsePeriod)
}

// loadingBar returns the left edge and width of the loading progress bar as
// fractions of the track, for elapsed time t. The bar grows from the left,
// peaks at 40% width centered on the track, and shrinks off the right.
func loadingBar(t float64) (left, width float64) {
	p := math.Mod(t, loadingBarPeriod) / loadingBarPeriod
	if p < 0 {
		p += 1
	}
	if p < 0.5 {
		e := float64(ease.InOutCubic(float32(p*2), 0, 1, 1))
		return lerp(-0.1, 0.3, e), lerp(0, 0.4, e)
	}
	e := float64(ease.InOutCubic(float32((p-0.5)*2), 0, 1, 1))
	return lerp(0.3, 1.1, e), lerp(0.4, 0, e)
}

// Overlay draws the 2D layer over the scene: loading screen, title, mute
// toggle, drag hint and greeting card.
type Overlay struct {
	pal   Palette
	card  CardConfig
	fonts *Fonts
	gfx   *Renderer
	photo *ImagePreload

	w, h   float64
	layout overlayLayout
	clock  float64

	titleAlpha  float64
	titleOffset float64
	titleTween  *TweenGroup

	cardAlpha float64
	cardScale float64
	cardSlide float64
	cardTween *TweenGroup

	cardImage *ebiten.Image
}

// NewOverlay creates the overlay. photo may be nil.
func NewOverlay(pal Palette, card CardConfig, fonts *Fonts, gfx *Renderer, photo *ImagePreload) *Overlay {
	return &Overlay{
		pal:       pal,
		card:      card,
		fonts:     fonts,
		gfx:       gfx,
		photo:     photo,
		cardScale: 1,
	}
}

// SetSize recomputes the widget layout for a w×h viewport.
func (o *Overlay) SetSize(w, h float64) {
	if w == o.w && h == o.h {
		return
	}
	o.w, o.h = w, h
	cw, _ := measureText(o.card.Close, o.fonts.Face(buttonTextSize))
	o.layout = computeLayout(w, h, o.card, cw)
}

// Layout returns the current widget geometry.
func (o *Overlay) Layout() overlayLayout { return o.layout }

// HitLayout returns the layout with the card and its close button moved to
// where the open animation currently draws them.
func (o *Overlay) HitLayout() overlayLayout {
	l := o.layout
	cx := l.Card.X + l.Card.Width/2
	cy := l.Card.Y + l.Card.Height/2
	l.Card = animateRoundRect(l.Card, cx, cy, o.cardScale, o.cardSlide)
	l.Close = animateRoundRect(l.Close, cx, cy, o.cardScale, o.cardSlide)
	return l
}

// animateRoundRect scales r about (cx, cy) and shifts it down by slide.
func animateRoundRect(r HitRoundRect, cx, cy, scale, slide float64) HitRoundRect {
	return HitRoundRect{
		X:      cx + (r.X-cx)*scale,
		Y:      cy + (r.Y-cy)*scale + slide,
		Width:  r.Width * scale,
		Height: r.Height * scale,
		Radius: r.Radius * scale,
	}
}

// OnTransition starts the entrance animations that follow shell changes.
// The title fades in whenever it becomes visible again.
func (o *Overlay) OnTransition(ev ShellEvent) {
	switch {
	case ev.Type == EventPhaseChanged && ev.Phase == PhaseIntroLocked,
		ev.Type == EventCardClosed:
		o.titleTween = NewTweenGroup(titleFadeDuration, ease.OutCubic,
			TweenField{Ptr: &o.titleAlpha, From: 0, To: 1},
			TweenField{Ptr: &o.titleOffset, From: -10, To: 0},
		)
	case ev.Type == EventCardOpened:
		o.cardTween = NewTweenGroup(cardOpenDuration, ease.OutCubic,
			TweenField{Ptr: &o.cardAlpha, From: 0, To: 1},
			TweenField{Ptr: &o.cardScale, From: 0.9, To: 1},
			TweenField{Ptr: &o.cardSlide, From: 40, To: 0},
		)
	}
}

// Update advances overlay animations by dt seconds.
func (o *Overlay) Update(dt float64) {
	o.clock += dt
	o.titleTween.Update(float32(dt))
	o.cardTween.Update(float32(dt))
	if o.photo != nil {
		o.photo.Poll()
	}
}

// overlayLayer is one independently drawn part of the overlay.
type overlayLayer uint8

const (
	layerLoading overlayLayer = iota
	layerTitle
	layerHint
	layerCard
	layerMute
)

// overlayLayers returns the layers shown for the shell's state, bottom to
// top. The mute toggle is always last so it stays above the card backdrop,
// matching dispatchRelease which tests it first.
func overlayLayers(shell *Shell) []overlayLayer {
	if shell.Loading() {
		return []overlayLayer{layerLoading}
	}
	if shell.CardOpen() {
		return []overlayLayer{layerCard, layerMute}
	}
	if shell.CanInteract() {
		return []overlayLayer{layerTitle, layerHint, layerMute}
	}
	return []overlayLayer{layerTitle, layerMute}
}

// Draw renders the overlay for the shell's current state.
func (o *Overlay) Draw(dst *ebiten.Image, shell *Shell) {
	for _, layer := range overlayLayers(shell) {
		switch layer {
		case layerLoading:
			o.drawLoading(dst)
		case layerTitle:
			o.drawTitle(dst)
		case layerHint:
			o.drawHint(dst)
		case layerCard:
			o.drawCard(dst)
		case layerMute:
			o.drawMute(dst, shell.Muted())
		}
	}
}

func (o *Overlay) drawLoading(dst *ebiten.Image) {
	dst.Fill(o.pal.Background.RGBA())
	cx := o.w / 2
	cy := o.h/2 - 40
	t := o.clock

	o.gfx.drawGlow(dst, Vec2{X: cx, Y: cy}, 160, o.pal.LoadingTree, 0.2*pulse(t, 0), BlendAdd)

	// Silhouette, scaled 1.25 about its center: a diamond star, three
	// overlapping cones and a trunk, stacked top to bottom.
	const s = 1.25
	top := cy - 80*s
	star := []Vec2{
		{X: cx, Y: top},
		{X: cx + 8.5*s, Y: top + 8.5*s},
		{X: cx, Y: top + 17*s},
		{X: cx - 8.5*s, Y: top + 8.5*s},
	}
	o.gfx.FillPolygon(dst, star, o.pal.LoadingStar, pulse(t, 0))

	y := top + 21*s
	cones := []struct{ halfW, h, overlap, delay float64 }{
		{20, 30, 0, 0},
		{35, 45, 20, 0.2},
		{50, 60, 28, 0.4},
	}
	for _, c := range cones {
		y -= c.overlap * s
		tri := []Vec2{
			{X: cx, Y: y},
			{X: cx + c.halfW*s, Y: y + c.h*s},
			{X: cx - c.halfW*s, Y: y + c.h*s},
		}
		o.gfx.FillPolygon(dst, tri, o.pal.LoadingTree, pulse(t, c.delay))
		y += c.h * s
	}
	y -= 4 * s
	o.gfx.FillPolygon(dst, []Vec2{
		{X: cx - 10*s, Y: y},
		{X: cx + 10*s, Y: y},
		{X: cx + 10*s, Y: y + 32*s},
		{X: cx - 10*s, Y: y + 32*s},
	}, o.pal.LoadingTrunk, 1)
	y += 32*s + 48

	drawTracked(dst, loadingCaption, cx, y, 0.6*hintSize, textStyle{
		face: o.fonts.Face(hintSize), color: o.pal.Text, alpha: 0.4, align: text.AlignCenter,
	})
	y += hintSize*1.5 + 24

	const barW = 160
	bx := cx - barW/2
	track := o.pal.Text.WithAlpha(0.1)
	vector.DrawFilledRect(dst, float32(bx), float32(y), barW, 1, track.RGBA(), false)
	left, width := loadingBar(t)
	x0 := math.Max(left, 0)
	x1 := math.Min(left+width, 1)
	if x1 > x0 {
		bar := o.pal.Text.WithAlpha(0.6)
		vector.DrawFilledRect(dst, float32(bx+x0*barW), float32(y), float32((x1-x0)*barW), 1, bar.RGBA(), false)
	}
}

func (o *Overlay) drawTitle(dst *ebiten.Image) {
	if o.titleAlpha <= 0 {
		return
	}
	face := o.fonts.Face(titleSize)
	y := o.layout.TitleY + o.titleOffset
	o.gfx.drawGlow(dst, Vec2{X: o.w / 2, Y: y + titleSize/2}, titleSize*3, o.pal.Title, 0.12*o.titleAlpha, BlendAdd)
	drawText(dst, titleText, o.w/2, y, textStyle{
		face: face, color: o.pal.Title, alpha: o.titleAlpha, align: text.AlignCenter,
	})
}

func (o *Overlay) drawHint(dst *ebiten.Image) {
	alpha := 0.6 * pulse(o.clock, 0)
	y := o.layout.HintY
	drawTracked(dst, hintText, o.w/2, y, 0.4*hintSize, textStyle{
		face: o.fonts.Face(hintSize), color: o.pal.Text, alpha: alpha, align: text.AlignCenter,
	})
	// Fading vertical rule under the hint.
	lineTop := y + hintSize*1.5 + 12
	const steps = 10
	for i := 0; i < steps; i++ {
		a := alpha * (1 - float64(i)/steps)
		c := o.pal.Text.WithAlpha(a)
		vector.DrawFilledRect(dst, float32(o.w/2-0.5), float32(lineTop+float64(i)*4), 1, 4, c.RGBA(), false)
	}
}

func (o *Overlay) drawMute(dst *ebiten.Image, muted bool) {
	m := o.layout.Mute
	cx, cy := float32(m.CenterX), float32(m.CenterY)
	vector.DrawFilledCircle(dst, cx, cy, float32(m.Radius), o.pal.Text.WithAlpha(0.05).RGBA(), true)
	vector.StrokeCircle(dst, cx, cy, float32(m.Radius), 1, o.pal.Text.WithAlpha(0.1).RGBA(), true)

	// 20px icon on a 24-unit grid, centered on the button.
	const size = 20.0
	k := size / 24
	ox := m.CenterX - size/2
	oy := m.CenterY - size/2
	pt := func(x, y float64) (float32, float32) {
		return float32(ox + x*k), float32(oy + y*k)
	}
	stroke := float32(2 * k)
	clr := o.pal.Text.RGBA()
	line := func(x0, y0, x1, y1 float64) {
		ax, ay := pt(x0, y0)
		bx, by := pt(x1, y1)
		vector.StrokeLine(dst, ax, ay, bx, by, stroke, clr, true)
	}

	// Speaker body.
	speaker := [][2]float64{{11, 5}, {6, 9}, {2, 9}, {2, 15}, {6, 15}, {11, 19}, {11, 5}}
	for i := 0; i+1 < len(speaker); i++ {
		line(speaker[i][0], speaker[i][1], speaker[i+1][0], speaker[i+1][1])
	}

	if muted {
		line(23, 9, 17, 15)
		line(17, 9, 23, 15)
		return
	}
	// Sound waves: arcs about (12,12) spanning ±45°.
	for _, r := range [...]float64{5, 10} {
		const segs = 8
		for i := 0; i < segs; i++ {
			a0 := -math.Pi/4 + float64(i)/segs*math.Pi/2
			a1 := -math.Pi/4 + float64(i+1)/segs*math.Pi/2
			line(12+math.Cos(a0)*r, 12+math.Sin(a0)*r, 12+math.Cos(a1)*r, 12+math.Sin(a1)*r)
		}
	}
}

func (o *Overlay) drawCard(dst *ebiten.Image) {
	l := o.layout
	backdrop := o.pal.Background.WithAlpha(0.8 * o.cardAlpha)
	vector.DrawFilledRect(dst, 0, 0, float32(o.w), float32(o.h), backdrop.RGBA(), false)

	cw, ch := l.Card.Width, l.Card.Height
	if cw <= 0 || ch <= 0 {
		return
	}
	o.renderCardImage(int(math.Ceil(cw)), int(math.Ceil(ch)))

	// Shadow, then the card clipped to its rounded outline, zoomed about its
	// center and slid up into place.
	cx := l.Card.X + cw/2
	cy := l.Card.Y + ch/2 + o.cardSlide
	o.gfx.drawGlow(dst, Vec2{X: cx, Y: cy}, math.Max(cw, ch)*0.8, o.pal.OverlayShadow, 0.5*o.cardAlpha, BlendNormal)

	local := roundRectPoints(0, 0, cw, ch, cardRadius, 6)
	pts := make([]Vec2, len(local))
	for i, p := range local {
		pts[i] = Vec2{
			X: cx + (p.X-cw/2)*o.cardScale,
			Y: cy + (p.Y-ch/2)*o.cardScale,
		}
	}
	o.gfx.drawTexturedPolygon(dst, o.cardImage, pts, local, o.cardAlpha)
}

// renderCardImage paints the card content at rest (card-local coordinates)
// into an offscreen image so it can be clipped, scaled and faded as one.
func (o *Overlay) renderCardImage(w, h int) {
	if o.cardImage != nil {
		b := o.cardImage.Bounds()
		if b.Dx() != w || b.Dy() != h {
			o.cardImage.Deallocate()
			o.cardImage = nil
		}
	}
	if o.cardImage == nil {
		o.cardImage = ebiten.NewImage(w, h)
	}
	img := o.cardImage
	img.Fill(o.pal.CardSurface.RGBA())

	l := o.layout
	side := l.Image.Width
	ox, oy := l.Card.X, l.Card.Y

	if photo := o.photoImage(); photo != nil {
		// object-fit: cover, centered.
		b := photo.Bounds()
		pw, ph := float64(b.Dx()), float64(b.Dy())
		scale := math.Max(side/pw, side/ph)
		sub := photo.SubImage(centeredCrop(b.Dx(), b.Dy(), side/scale)).(*ebiten.Image)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.Filter = ebiten.FilterLinear
		img.DrawImage(sub, op)
	} else {
		placeholder := MustHex("#f3f4f6")
		vector.DrawFilledRect(img, 0, 0, float32(side), float32(side), placeholder.RGBA(), false)
	}

	// Gradient from the card surface at the image bottom to clear at its middle.
	surf := o.pal.CardSurface
	o.gfx.resetBatch()
	o.gfx.appendVertex(Vec2{X: 0, Y: side / 2}, surf, 0)
	o.gfx.appendVertex(Vec2{X: side, Y: side / 2}, surf, 0)
	o.gfx.appendVertex(Vec2{X: side, Y: side}, surf, 1)
	o.gfx.appendVertex(Vec2{X: 0, Y: side}, surf, 1)
	o.gfx.appendFan(4)
	o.gfx.flush(img, o.gfx.white, BlendNormal)

	mid := side / 2
	drawText(img, o.card.Heading, mid, l.HeadingY-oy, textStyle{
		face: o.fonts.Face(headingSize), color: o.pal.CardHeading, alpha: 1, align: text.AlignCenter,
	})
	drawTracked(img, o.card.Subtitle, mid, l.SubtitleY-oy, 0.3*subtitleSize, textStyle{
		face: o.fonts.Face(subtitleSize), color: o.pal.CardSubtitle, alpha: 1, align: text.AlignCenter,
	})

	btn := l.Close
	o.gfx.FillPolygon(img, roundRectPoints(btn.X-ox, btn.Y-oy, btn.Width, btn.Height, btn.Radius, 6), o.pal.Accent, 1)
	face := o.fonts.Face(buttonTextSize)
	_, th := measureText(o.card.Close, face)
	drawText(img, o.card.Close, mid, btn.Y-oy+(btn.Height-th)/2, textStyle{
		face: face, color: o.pal.Text, alpha: 1, align: text.AlignCenter,
	})
}

// photoImage returns the preloaded card photo, or nil while pending.
func (o *Overlay) photoImage() *ebiten.Image {
	if o.photo == nil {
		return nil
	}
	return o.photo.Image()
}

// centeredCrop returns the centered square of side px within a w×h image.
func centeredCrop(w, h int, side float64) image.Rectangle {
	s := int(math.Round(side))
	if s > w {
		s = w
	}
	if s > h {
		s = h
	}
	x := (w - s) / 2
	y := (h - s) / 2
	return image.Rect(x, y, x+s, y+s)
}

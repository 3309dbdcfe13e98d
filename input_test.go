package yuletide

import (
	"testing"
	"time"
)

func testLayout() overlayLayout {
	return computeLayout(480, 800, DefaultConfig().Card, 28)
}

func TestDispatchRelease_Loading(t *testing.T) {
	sh, _ := newTestShell(&fakePlayer{})
	l := testLayout()
	mute := Vec2{X: l.Mute.CenterX, Y: l.Mute.CenterY}
	if got := dispatchRelease(sh, l, mute, mute); got != releaseIgnored {
		t.Errorf("mute while loading = %s", got)
	}
	if got := dispatchRelease(sh, l, Vec2{X: 240, Y: 300}, Vec2{X: 240, Y: 300}); got != releaseIgnored {
		t.Errorf("tap while loading = %s", got)
	}
	if sh.CardOpen() || !sh.Muted() {
		t.Error("state changed while loading")
	}
}

func TestDispatchRelease_CardFlow(t *testing.T) {
	sh := interactiveShell(nil)
	l := testLayout()
	pt := func(x, y float64) Vec2 { return Vec2{X: x, Y: y} }
	closeBtn := pt(l.Close.X+l.Close.Width/2, l.Close.Y+l.Close.Height/2)
	cardBody := pt(l.Card.X+l.Card.Width/2, l.Card.Y+l.Card.Width/2)

	steps := []struct {
		name     string
		down, up Vec2
		want     releaseTarget
		open     bool
	}{
		{"drag does not open", pt(140, 420), pt(340, 420), releaseIgnored, false},
		{"tap opens", pt(240, 420), pt(241, 421), releaseOpenCard, true},
		{"tap on card body keeps it", cardBody, cardBody, releaseCardBody, true},
		{"drag off the card keeps it", cardBody, pt(5, 5), releaseCardBody, true},
		{"close button", closeBtn, closeBtn, releaseCardClose, false},
		{"tap opens again", pt(240, 420), pt(240, 420), releaseOpenCard, true},
		{"backdrop closes", pt(20, 780), pt(20, 780), releaseBackdrop, false},
	}
	for _, st := range steps {
		if got := dispatchRelease(sh, l, st.down, st.up); got != st.want {
			t.Fatalf("%s: target = %s, want %s", st.name, got, st.want)
		}
		if sh.CardOpen() != st.open {
			t.Fatalf("%s: card open = %v, want %v", st.name, sh.CardOpen(), st.open)
		}
	}
}

func TestDispatchRelease_Mute(t *testing.T) {
	p := &fakePlayer{}
	sh := interactiveShell(p)
	l := testLayout()
	mute := Vec2{X: l.Mute.CenterX, Y: l.Mute.CenterY}

	if got := dispatchRelease(sh, l, mute, mute); got != releaseMute {
		t.Fatalf("target = %s", got)
	}
	if sh.Muted() || sh.CardOpen() {
		t.Errorf("after mute tap: muted=%v card=%v", sh.Muted(), sh.CardOpen())
	}

	// Works while the card is open, without closing it.
	sh.OpenCard()
	dispatchRelease(sh, l, mute, mute)
	if !sh.Muted() || !sh.CardOpen() {
		t.Errorf("mute over card: muted=%v card=%v", sh.Muted(), sh.CardOpen())
	}
}

func TestDispatchRelease_ReleaseOnMuteDoesNotOpen(t *testing.T) {
	sh := interactiveShell(&fakePlayer{})
	l := testLayout()
	// Goes down just outside the button and lifts just inside it.
	down := Vec2{X: l.Mute.CenterX - 27, Y: l.Mute.CenterY}
	up := Vec2{X: l.Mute.CenterX - 24, Y: l.Mute.CenterY}
	if got := dispatchRelease(sh, l, down, up); got != releaseIgnored {
		t.Errorf("target = %s", got)
	}
	if sh.CardOpen() || !sh.Muted() {
		t.Error("release on mute opened the card or toggled audio")
	}
}

func TestDispatchRelease_IntroLockedTap(t *testing.T) {
	sh, sched := newTestShell(nil)
	sched.Advance(2 * time.Second)
	if got := dispatchRelease(sh, testLayout(), Vec2{X: 240, Y: 420}, Vec2{X: 240, Y: 420}); got != releaseOpenCard {
		t.Errorf("target = %s", got)
	}
}

func TestReleaseTargetString(t *testing.T) {
	for target, want := range map[releaseTarget]string{
		releaseIgnored:   "ignored",
		releaseMute:      "mute",
		releaseCardClose: "card-close",
		releaseCardBody:  "card-body",
		releaseBackdrop:  "backdrop",
		releaseOpenCard:  "open-card",
	} {
		if got := target.String(); got != want {
			t.Errorf("%d: %q, want %q", target, got, want)
		}
	}
}

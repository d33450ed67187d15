package object

import (
	"math"
	"testing"
	"time"

	"github.com/tomz197/spaceimpact/internal/loop/config"
)

// seqRand replays a fixed sequence of values, repeating the last one.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i]
	if r.i < len(r.vals)-1 {
		r.i++
	}
	return v
}

func TestShipMoveClamps(t *testing.T) {
	maxX := Playfield.W/2 - config.ShipWidth
	maxY := Playfield.H - config.ShipHeight

	tests := []struct {
		name  string
		start [2]float64
		in    Input
		ticks int
	}{
		{"up past top", [2]float64{40, 2}, Input{Up: true}, 10},
		{"down past bottom", [2]float64{40, maxY - 2}, Input{Down: true}, 10},
		{"left past edge", [2]float64{1, 100}, Input{Left: true}, 10},
		{"right past midline", [2]float64{maxX - 1, 100}, Input{Right: true}, 200},
		{"diagonal", [2]float64{0, 0}, Input{Down: true, Right: true}, 500},
		{"opposing", [2]float64{100, 100}, Input{Up: true, Down: true, Left: true, Right: true}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewShip()
			s.X, s.Y = tt.start[0], tt.start[1]
			for i := 0; i < tt.ticks; i++ {
				s.Move(tt.in)
				if s.Y < 0 || s.Y > maxY {
					t.Fatalf("tick %d: y=%v out of [0,%v]", i, s.Y, maxY)
				}
				if s.X < 0 || s.X > maxX {
					t.Fatalf("tick %d: x=%v out of [0,%v]", i, s.X, maxX)
				}
			}
		})
	}
}

func TestShipFire(t *testing.T) {
	s := NewShip()

	single := s.Fire(false)
	if len(single) != 1 {
		t.Fatalf("expected 1 bullet, got %d", len(single))
	}
	if single[0].X != s.X+s.W {
		t.Errorf("bullet x = %v, want %v", single[0].X, s.X+s.W)
	}
	if want := s.Y + s.H/2 - 3; single[0].Y != want {
		t.Errorf("bullet y = %v, want %v", single[0].Y, want)
	}

	double := s.Fire(true)
	if len(double) != 2 {
		t.Fatalf("expected 2 bullets, got %d", len(double))
	}
	if double[0].Y != s.Y+6 || double[1].Y != s.Y+s.H-12 {
		t.Errorf("double bullets at y=%v,%v", double[0].Y, double[1].Y)
	}
}

func TestBulletLeavesRightEdge(t *testing.T) {
	b := NewBullet(Playfield.W-6, 10)
	if b.Update() {
		t.Fatal("bullet at the edge should still be in play")
	}
	if !b.Update() {
		t.Fatal("bullet past the edge should be removed")
	}
}

func TestKindForRoll(t *testing.T) {
	tests := []struct {
		u    float64
		want EnemyKind
	}{
		{0, EnemyNormal},
		{0.5499, EnemyNormal},
		{0.55, EnemyFast},
		{0.7799, EnemyFast},
		{0.78, EnemyZigZag},
		{0.9499, EnemyZigZag},
		{0.95, EnemyMiniBoss},
		{0.9999, EnemyMiniBoss},
	}
	for _, tt := range tests {
		if got := KindForRoll(tt.u); got != tt.want {
			t.Errorf("KindForRoll(%v) = %v, want %v", tt.u, got, tt.want)
		}
	}
}

func TestNewEnemyScaling(t *testing.T) {
	const m = 1.5

	tests := []struct {
		kind  EnemyKind
		size  float64
		speed float64
		hp    int
	}{
		{EnemyNormal, 28, 2 + m, 1},
		{EnemyFast, 20, 3.5 + 1.2*m, 1},
		{EnemyZigZag, 24, 2 + m, 2},
		{EnemyMiniBoss, 44, 1.2 + 0.3*m, 6 + 3},
	}
	for _, tt := range tests {
		e := NewEnemy(tt.kind, 0, 0, m)
		if e.W != tt.size || e.H != tt.size {
			t.Errorf("%v: size %vx%v, want %v", tt.kind, e.W, e.H, tt.size)
		}
		if math.Abs(e.Speed-tt.speed) > 1e-9 {
			t.Errorf("%v: speed %v, want %v", tt.kind, e.Speed, tt.speed)
		}
		if e.HP != tt.hp {
			t.Errorf("%v: hp %d, want %d", tt.kind, e.HP, tt.hp)
		}
	}

	// 0.4*2 = 0.8 rounds down
	if e := NewEnemy(EnemyMiniBoss, 0, 0, 0.4); e.HP != 6 {
		t.Errorf("miniboss hp at m=0.4: %d, want 6", e.HP)
	}
}

func TestNewEnemyAtEdge(t *testing.T) {
	rng := &seqRand{vals: []float64{0.9, 0.5, 0.25}}
	e := NewEnemyAtEdge(rng, 0)
	if e.Kind != EnemyZigZag {
		t.Fatalf("kind = %v, want zigzag", e.Kind)
	}
	if e.X != Playfield.W {
		t.Errorf("x = %v, want %v", e.X, Playfield.W)
	}
	if want := 0.5 * (Playfield.H - 24); e.Y != want {
		t.Errorf("y = %v, want %v", e.Y, want)
	}
	if want := 0.25 * 2 * math.Pi; e.Phase != want {
		t.Errorf("phase = %v, want %v", e.Phase, want)
	}
}

func TestEnemyUpdate(t *testing.T) {
	e := NewEnemy(EnemyNormal, 10, 50, 0)
	if e.Update(0) {
		t.Fatal("enemy still on screen was reported as gone")
	}
	if e.X != 8 || e.Y != 50 {
		t.Fatalf("normal enemy at (%v,%v), want (8,50)", e.X, e.Y)
	}

	e = NewEnemy(EnemyNormal, -27, 50, 0)
	if !e.Update(0) {
		t.Fatal("enemy past the left edge should be removed")
	}

	z := NewEnemy(EnemyZigZag, 300, 100, 0)
	z.Phase = math.Pi / 2
	z.Update(0)
	if math.Abs(z.Y-102) > 1e-9 {
		t.Fatalf("zigzag y = %v, want 102", z.Y)
	}
	swing := 200 * math.Pi
	z.Update(time.Duration(swing) * time.Millisecond)
	if z.Y >= 102 {
		t.Fatalf("zigzag should swing back, y = %v", z.Y)
	}
}

func TestBoss(t *testing.T) {
	if got := BossHP(1); got != 25 {
		t.Errorf("BossHP(1) = %d, want 25", got)
	}
	if got := BossHP(4); got != 55 {
		t.Errorf("BossHP(4) = %d, want 55", got)
	}

	b := NewBoss(2)
	if b.HP != 35 {
		t.Errorf("level 2 boss hp = %d, want 35", b.HP)
	}
	if b.X != Playfield.W || b.Y != Playfield.H/2-64 {
		t.Errorf("boss spawned at (%v,%v)", b.X, b.Y)
	}
	for i := 0; i < 1000; i++ {
		b.Update()
	}
	if want := Playfield.W - b.W - config.BossRightMargin; b.X != want {
		t.Errorf("boss x = %v, want clamp at %v", b.X, want)
	}
}

func TestPowerup(t *testing.T) {
	p := NewPowerupAtEdge(&seqRand{vals: []float64{0.2, 0.5}})
	if p.Kind != PowerupLife {
		t.Errorf("kind = %v, want life", p.Kind)
	}
	if want := 0.5 * (Playfield.H - 20); p.Y != want {
		t.Errorf("y = %v, want %v", p.Y, want)
	}

	p = NewPowerupAtEdge(&seqRand{vals: []float64{0.5, 0}})
	if p.Kind != PowerupDoubleShot {
		t.Errorf("kind = %v, want double", p.Kind)
	}

	p.X = -19
	if !p.Update() {
		t.Error("powerup past the left edge should be removed")
	}
}

func TestExplosionExpires(t *testing.T) {
	e := NewExplosion(NewEnemy(EnemyNormal, 1, 2, 0).Rect)
	for i := 1; i < config.ExplosionTicks; i++ {
		if e.Update() {
			t.Fatalf("explosion expired early at tick %d", i)
		}
	}
	if !e.Update() {
		t.Fatal("explosion should expire after its lifetime")
	}
}

func TestStarWraps(t *testing.T) {
	rng := &seqRand{vals: []float64{0.5}}
	s := Star{X: 0.2, Y: 10, Size: 1, Speed: 1}
	s.Update(rng)
	if s.X != Playfield.W {
		t.Errorf("star x = %v, want %v", s.X, Playfield.W)
	}
	if s.Y != 0.5*Playfield.H {
		t.Errorf("star y = %v, want %v", s.Y, 0.5*Playfield.H)
	}

	stars := NewStarfield(rng, 5)
	if len(stars) != 5 {
		t.Fatalf("got %d stars", len(stars))
	}
	for _, st := range stars {
		if st.Size < 1 || st.Size >= 3 || st.Speed < 0.5 || st.Speed >= 2 {
			t.Errorf("star out of range: %+v", st)
		}
	}
}

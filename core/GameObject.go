package core

// Paddle is a vertically moving bat. Only Y changes after construction.
type Paddle struct {
	X, Y   int
	Vel    int // -1, 0 or 1
	VelMod int
	Width  int
	Height int
	Side   Side
}

// Ball moves by a constant velocity; only the signs of VelX and VelY ever change.
type Ball struct {
	X, Y       int
	VelX, VelY int
	Radius     int
}

func NewPaddle(side Side) *Paddle {
	return &Paddle{
		VelMod: PaddleSpeedModifier,
		Width:  PaddleWidth,
		Height: PaddleHeight,
		Side:   side,
	}
}

func (p *Paddle) SetPosition(x, y int) {
	p.X = x
	p.Y = y
}

// Move is not clamped to the arena, paddles are free to leave the screen.
func (p *Paddle) Move() {
	p.Y += p.Vel * p.VelMod
}

func (p *Paddle) SetDirection(dir int) {
	p.Vel = dir
}

// Bounds is the drawn square of side Height anchored at (X, Y).
func (p *Paddle) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Height, H: p.Height}
}

func NewBall() *Ball {
	return &Ball{
		X:      BallStartX,
		Y:      BallStartY,
		VelX:   BallVelocityX,
		VelY:   BallVelocityY,
		Radius: BallRadius,
	}
}

func (b *Ball) Move() {
	b.X += b.VelX
	b.Y += b.VelY
}

// Reset repositions the ball and leaves its velocity untouched.
func (b *Ball) Reset(x, y int) {
	b.X = x
	b.Y = y
}

func (b *Ball) BounceHorizontal() {
	b.VelX = -b.VelX
}

func (b *Ball) BounceVertical() {
	b.VelY = -b.VelY
}

func (b *Ball) Bounds() Circle {
	return Circle{X: b.X, Y: b.Y, Radius: b.Radius}
}

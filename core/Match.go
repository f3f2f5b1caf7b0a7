package core

import "github.com/google/uuid"

// Match owns both paddles and the ball and advances them one tick at a time.
// It is not safe for concurrent use; the event loop is its only owner.
type Match struct {
	id          string
	width       int
	height      int
	leftScore   int
	rightScore  int
	state       State
	winner      Side
	leftPaddle  *Paddle
	rightPaddle *Paddle
	ball        *Ball
}

func NewMatch(width, height int) *Match {
	leftPaddle := NewPaddle(Left)
	// only the last Width columns of the drawn square stay on screen
	leftPaddle.SetPosition(leftPaddle.Width-leftPaddle.Height, height/2-leftPaddle.Height/2)

	rightPaddle := NewPaddle(Right)
	rightPaddle.SetPosition(width-rightPaddle.Width, height/2-rightPaddle.Height/2)

	return &Match{
		id:          uuid.NewString(),
		width:       width,
		height:      height,
		state:       Playing,
		leftPaddle:  leftPaddle,
		rightPaddle: rightPaddle,
		ball:        NewBall(),
	}
}

func (m *Match) ID() string {
	return m.id
}

func (m *Match) Ball() *Ball {
	return m.ball
}

func (m *Match) LeftPaddle() *Paddle {
	return m.leftPaddle
}

func (m *Match) RightPaddle() *Paddle {
	return m.rightPaddle
}

func (m *Match) Score() (int, int) {
	return m.leftScore, m.rightScore
}

func (m *Match) State() State {
	return m.state
}

// Winner is NoSide until the match is Finished.
func (m *Match) Winner() Side {
	return m.winner
}

// Update advances the match by one tick and returns the resulting state together with
// any score or win events produced by it. A Finished match no longer changes.
func (m *Match) Update() (State, []Event) {
	if m.state == Finished {
		return m.state, nil
	}

	var events []Event

	m.ball.Move()
	m.leftPaddle.Move()
	m.rightPaddle.Move()

	// either paddle flips vel_x once, even if the ball touches both
	if m.isTouchLeftPaddle() || m.isTouchRightPaddle() {
		m.ball.BounceHorizontal()

		if (m.isNearPaddleEdge(m.rightPaddle) && m.isInRightZone()) ||
			(m.isNearPaddleEdge(m.leftPaddle) && m.isInLeftZone()) {
			m.ball.BounceVertical()
		}
	}

	if m.isCollidesWithWall() {
		m.ball.BounceVertical()
	}

	if scorer := m.ballOutSide(); scorer != NoSide {
		m.state = Scoring
		events = append(events, m.calculateScore(scorer))
		m.resetNewRound()
		m.state = Playing
	}

	if over, winner := m.isGameOver(); over {
		m.state = Finished
		m.winner = winner
		events = append(events, Event{Kind: Won, Side: winner, LeftScore: m.leftScore, RightScore: m.rightScore})
	}

	return m.state, events
}

func (m *Match) isInLeftZone() bool {
	return m.ball.X-m.ball.Radius <= m.leftPaddle.Width
}

func (m *Match) isInRightZone() bool {
	return m.ball.X+m.ball.Radius >= m.width-m.rightPaddle.Width
}

func (m *Match) isWithinPaddleSpan(p *Paddle) bool {
	return m.ball.Y+m.ball.Radius >= p.Y && m.ball.Y-m.ball.Radius <= p.Y+p.Height
}

func (m *Match) isTouchLeftPaddle() bool {
	return m.isInLeftZone() && m.isWithinPaddleSpan(m.leftPaddle)
}

func (m *Match) isTouchRightPaddle() bool {
	return m.isInRightZone() && m.isWithinPaddleSpan(m.rightPaddle)
}

// isNearPaddleEdge reports a hit within EdgeMargin of the paddle's top or bottom.
func (m *Match) isNearPaddleEdge(p *Paddle) bool {
	return m.ball.Y-m.ball.Radius > p.Y+p.Height-EdgeMargin ||
		m.ball.Y+m.ball.Radius < p.Y+EdgeMargin
}

// No clamping, the ball may overshoot by up to its radius before turning.
func (m *Match) isCollidesWithWall() bool {
	return m.ball.Y+m.ball.Radius > m.height || m.ball.Y < m.ball.Radius
}

// ballOutSide returns the side that scores once the ball has fully left the arena.
func (m *Match) ballOutSide() Side {
	if m.ball.X+m.ball.Radius < 0 {
		return Right
	}
	if m.ball.X-m.ball.Radius > m.width {
		return Left
	}
	return NoSide
}

func (m *Match) calculateScore(scorer Side) Event {
	if scorer == Left {
		m.leftScore += 1
	} else {
		m.rightScore += 1
	}
	return Event{Kind: Scored, Side: scorer, LeftScore: m.leftScore, RightScore: m.rightScore}
}

func (m *Match) resetNewRound() {
	m.ball.Reset(m.width/2, m.height/2)
}

func (m *Match) isGameOver() (bool, Side) {
	if m.leftScore >= ScoreLimit {
		return true, Left
	}
	if m.rightScore >= ScoreLimit {
		return true, Right
	}
	return false, NoSide
}

// Press sets the paddle direction for a game key. Other keys are ignored.
func (m *Match) Press(key Key) {
	switch key {
	case KeyUp:
		m.rightPaddle.SetDirection(-1)
	case KeyDown:
		m.rightPaddle.SetDirection(1)
	case KeyW:
		m.leftPaddle.SetDirection(-1)
	case KeyS:
		m.leftPaddle.SetDirection(1)
	}
}

// Release stops the paddle bound to key, whichever way it was moving.
func (m *Match) Release(key Key) {
	switch key {
	case KeyUp, KeyDown:
		m.rightPaddle.SetDirection(0)
	case KeyW, KeyS:
		m.leftPaddle.SetDirection(0)
	}
}

// Render returns the draw list for the current state: both paddles then the ball.
func (m *Match) Render() Frame {
	return Frame{
		Width:      m.width,
		Height:     m.height,
		Background: BackgroundColor,
		Shapes: []Shape{
			{Kind: RectShape, Color: ForegroundColor, Rect: m.leftPaddle.Bounds()},
			{Kind: RectShape, Color: ForegroundColor, Rect: m.rightPaddle.Bounds()},
			{Kind: CircleShape, Color: ForegroundColor, Circle: m.ball.Bounds()},
		},
	}
}

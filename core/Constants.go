package core

const ArenaWidth = 800  // 視窗寬度
const ArenaHeight = 600 // 視窗高度
const ScoreLimit = 5    // 遊戲結束分數

const PaddleWidth = 30
const PaddleHeight = 150
const PaddleSpeedModifier = 2

const BallRadius = 20
const BallStartX = 50
const BallStartY = 50
const BallVelocityX = 2
const BallVelocityY = 2

// EdgeMargin is how close to a paddle's top or bottom the ball must land to bounce vertically too.
const EdgeMargin = 10

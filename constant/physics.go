package constant

// Paddle geometry
const (
	PaddleWidth  = 10
	PaddleHeight = 100

	// PlayerPaddleX is the fixed left edge of the player paddle
	PlayerPaddleX = 10

	// AIPaddleX is the fixed left edge of the AI paddle
	AIPaddleX = FieldWidth - 20

	// PaddleStartY centers a paddle vertically
	PaddleStartY = FieldHeight/2 - PaddleHeight/2
)

// Paddle speeds (field units per frame)
const (
	PlayerPaddleStep = 10

	// AITrackStep is slower than BallSpeedY so a ball drifting away from the
	// AI paddle center can outrun it
	AITrackStep = 2
)

// Ball geometry and speed
const (
	BallWidth  = 7
	BallHeight = 7

	BallSpawnX = FieldWidth / 2
	BallSpawnY = FieldHeight / 2

	// BallSpeedX and BallSpeedY are magnitudes; sign is drawn at serve
	BallSpeedX = 5
	BallSpeedY = 3
)

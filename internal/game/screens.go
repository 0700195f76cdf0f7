package game

// Static screen art. Every asset is written into the console with
// PutString, so lines must stay under the console width to avoid
// accidental wraps.

const titleScreen = "" +
	"*****************************************************************************\n" +
	"*High Score:                                                                *\n" +
	"*                                                                           *\n" +
	"*             ______    ______    _  _      ______                          *\n" +
	"*            |___   \\  / __   \\  | || |    /  __  \\                         *\n" +
	"*              ___| | | |  | |   | || |_   |  __  |                         *\n" +
	"*             / ____/ | |__| |   |__   _|  | |  | |                         *\n" +
	"*            |______|  \\______/     |_|    \\______/                         *\n" +
	"*                                                                           *\n" +
	"*                         The Return of Gazool                              *\n" +
	"*                        ~*~*~*~*~*~*~*~*~*~*~*~                            *\n" +
	"*                                                                           *\n" +
	"*                          (N)ew Game                                       *\n" +
	"*                          (I)nstructions                                   *\n" +
	"*                          (Q)uit                                           *\n" +
	"*                                                                           *\n" +
	"*                                                                           *\n" +
	"*                                                                           *\n" +
	"*                                                                           *\n" +
	"*                                                                           *\n" +
	"*                                                                           *\n" +
	"*                                                                           *\n" +
	"*                                                                           *\n" +
	"*                                                                           *\n" +
	"*****************************************************************************"

// Console position of the high-score value on the title screen.
const (
	titleHighScoreRow = 1
	titleHighScoreCol = 13
)

const instructionScreen = "" +
	"*****************************************************************************\n" +
	"*                                                                           *\n" +
	"*                            How to Play                                    *\n" +
	"*                            -----------                                    *\n" +
	"*                 W / Up     : Shift blocks up                              *\n" +
	"*                 A / Left   : Shift blocks left                            *\n" +
	"*                 S / Down   : Shift blocks down                            *\n" +
	"*                 D / Right  : Shift blocks right                           *\n" +
	"*                 Q          : Quit to title                                *\n" +
	"*                                                                           *\n" +
	"*       Slide the tiles. When two tiles with the same number touch,         *\n" +
	"*       they merge into one. Reach the winning tile you picked on           *\n" +
	"*       the difficulty screen before the board fills up.                    *\n" +
	"*                                                                           *\n" +
	"*       The Archdemon Gazool is on his way. Sliding tiles is,               *\n" +
	"*       somehow, the only thing that can stop him.                          *\n" +
	"*                                                                           *\n" +
	"*                                                                           *\n" +
	"*                                                                           *\n" +
	"*                                                                           *\n" +
	"*                                                                           *\n" +
	"*                   (To leave this screen, press 'Q')                       *\n" +
	"*                                                                           *\n" +
	"*                                                                           *\n" +
	"*****************************************************************************"

const difficultyScreen = "" +
	"*****************************************************************************\n" +
	"*                                                                           *\n" +
	"*                                                                           *\n" +
	"*                                                                           *\n" +
	"*                     Select A Difficulty Level                             *\n" +
	"*                                                                           *\n" +
	"*                          (1) 8    -- Unicellular Organism                 *\n" +
	"*                          (2) 16   -- Moss                                 *\n" +
	"*                          (3) 32   -- Mango                                *\n" +
	"*                          (4) 64   -- Jellyfish                            *\n" +
	"*                          (5) 128  -- Cockroach                            *\n" +
	"*                          (6) 256  -- Hamster                              *\n" +
	"*                          (7) 512  -- Ferret                               *\n" +
	"*                          (8) 1024 -- Kangaroo                             *\n" +
	"*                          (9) 2048 -- Human                                *\n" +
	"*                          (0) 4096 -- Dolphin                              *\n" +
	"*                                                                           *\n" +
	"*                                                                           *\n" +
	"*                                                                           *\n" +
	"*                                                                           *\n" +
	"*                                                                           *\n" +
	"*                                                                           *\n" +
	"*                                                                           *\n" +
	"*                                                                           *\n" +
	"*****************************************************************************"

const victoryMessage = "" +
	"********************************************************************\n" +
	"*        YOU WIN -- PRESS 'Q' TO RETURN TO THE MAIN SCREEN         *\n" +
	"*        Gazool has been returned to sender.                       *\n" +
	"********************************************************************"

const defeatMessage = "" +
	"********************************************************************\n" +
	"*        YOU LOSE -- PRESS 'Q' TO RETURN TO THE MAIN SCREEN        *\n" +
	"*        The board is full and Gazool is very pleased.             *\n" +
	"********************************************************************"

// gameBackground is the board chrome: a 4x4 grid of 11x5 cells on the
// left, score boxes and key hints on the right. Tile patches are drawn
// over the cell interiors at (row*6+1, col*12+1).
const gameBackground = "" +
	"#-----------#-----------#-----------#-----------#  #-----------#-----------#\n" +
	"|           |           |           |           |  |  SCORE    |  BEST     |\n" +
	"|           |           |           |           |  #-----------#-----------#\n" +
	"|           |           |           |           |  |           |           |\n" +
	"|           |           |           |           |  #-----------#-----------#\n" +
	"|           |           |           |           |\n" +
	"#-----------#-----------#-----------#-----------#     'WASD' to move tiles\n" +
	"|           |           |           |           |     'Q' to quit\n" +
	"|           |           |           |           |\n" +
	"|           |           |           |           |\n" +
	"|           |           |           |           |\n" +
	"|           |           |           |           |\n" +
	"#-----------#-----------#-----------#-----------#\n" +
	"|           |           |           |           |\n" +
	"|           |           |           |           |\n" +
	"|           |           |           |           |\n" +
	"|           |           |           |           |\n" +
	"|           |           |           |           |\n" +
	"#-----------#-----------#-----------#-----------#\n" +
	"|           |           |           |           |\n" +
	"|           |           |           |           |\n" +
	"|           |           |           |           |\n" +
	"|           |           |           |           |\n" +
	"|           |           |           |           |\n" +
	"#-----------#-----------#-----------#-----------#"

// Console positions of the score values on the board.
const (
	scoreRow     = 3
	scoreCol     = 52
	highScoreCol = 64
)

// Console position of the game-over banners.
const bannerRow = 10

package board

// This file contains some sample filled boards, used solely for testing.

import "github.com/olaugh/magpie-retro-sub001/tilemapping"

// VsWho is a string representation of a board.
type VsWho string

const (
	// VsEd was a game I played against Ed, under club games 20150127vEd
	// Quackle generates 219 total unique moves with a rack of AFGIIIS
	VsEd VsWho = `
cesar: Turn 8
   A B C D E F G H I J K L M N O   -> cesar                    AFGIIIS   182
   ------------------------------     ed                       ADEILNV   226
 1|=     '       =       '     E| --Tracking-----------------------------------
 2|  -       "       "       - N| ?AAAAACCDDDEEIIIIKLNOOOQRRRRSTTTTUVVZ  37
 3|    -       '   '       -   d|
 4|'     -       '       -     U|
 5|        G L O W S   -       R|
 6|  "       "     P E T     " E|
 7|    '       ' F A X I N G   R|
 8|=     '     J A Y   T E E M S|
 9|    B     B O Y '       N    |
10|  " L   D O E     "     U "  |
11|    A N E W         - P I    |
12|'   M O   L E U       O N   '|
13|    E H     '   '     H E    |
14|  -       "       "       -  |
15|=     '       =       '     =|
   ------------------------------
`
	// VsMatt was a game I played against Matt Graham, 2018 Lake George tourney
	VsMatt = `
cesar: Turn 10
   A B C D E F G H I J K L M N O      matt g                   AEEHIIL   341
   ------------------------------  -> cesar                    AABDELT   318
 1|=     '       Z E P   F     =| --Tracking-----------------------------------
 2|  F L U K Y       R   R   -  | AEEEGHIIIILMRUUWWY  18
 3|    -     E X   ' A   U -    |
 4|'   S C A R I E S T   I     '|
 5|        -         T O T      |
 6|  "       " G O   L O     "  |
 7|    '       O R ' E T A '    | ↓
 8|=     '     J A B S   b     =|
 9|    '     Q I   '     A '    | ↓
10|  "       I   N   "   N   "  | ↓
11|      R e S P O N D - D      | ↓
12|' H O E       V       O     '| ↓
13|  E N C O M I A '     N -    | ↓
14|  -       "   T   "       -  |
15|=     V E N G E D     '     =|
   ------------------------------
`
	// VsJeremy was a game I played against Jeremy Hall, 2018-11 Manhattan tourney
	VsJeremy = `
jeremy hall: Turn 13
   A B C D E F G H I J K L M N O   -> jeremy hall              DDESW??   299
   ------------------------------     cesar                    AHIILR    352
 1|=     '       N       '     M| --Tracking-----------------------------------
 2|  -       Z O O N "       A A| AHIILR  6
 3|    -       ' B '       - U N|
 4|'   S -       L       L A D Y|
 5|    T   -     E     Q I   I  |
 6|  " A     P O R N "     N O R|
 7|    B I C E '   A A   D A   E|
 8|=     '     G U V S   O P   F|
 9|    '       '   E T   L A   U|
10|  "       J       R   E   U T|
11|        V O T E   I - R   N E|
12|'     -   G   M I C K I E S '|
13|    -       F E ' T   T H E W|
14|  -       " O R   "   E   X I|
15|=     '     O Y       '     G|
   ------------------------------
`
	// VsOxy is a constructed game that has a gigantic play available.
	VsOxy = `
cesar: Turn 11
   A B C D E F G H I J K L M N O      rubin                    ADDELOR   345
   ------------------------------  -> cesar                    OXPBAZE   129
 1|= P A C I F Y I N G   '     =| --Tracking-----------------------------------
 2|  I S     "       "       -  | ADDELORRRTVV  12
 3|Y E -       '   '       -    |
 4|' R E Q U A L I F I E D     '|
 5|H   L   -           -        |
 6|E D S     "       "       "  |
 7|N O '     T '   '       '    |
 8|= R A I N W A S H I N G     =|
 9|U M '     O '   '       '    |
10|T "   E   O       "       "  |
11|  W A K E n E R S   -        |
12|' O n E T I M E       -     '|
13|O O T     E ' B '       -    |
14|N -       "   U   "       -  |
15|= J A C U L A T I N G '     =|
   ------------------------------
`
	// VsRoy at the 2011 California Open
	VsRoy = `
cesar: Turn 10
   A B C D E F G H I J K L M N O      roy                      WZ        427
   ------------------------------  -> cesar                    EFHIKOQ   331
 1|=     '       =     L U R I D| --Tracking-----------------------------------
 2|  - O     "       "       - I| WZ  2
 3|    U       '   P R I C E R S|
 4|O U T R A T E S       O     T|
 5|    V   -           - u     E|
 6|G " I   C O L O N I A L   " N|
 7|A   E S     '   '     T '   D|
 8|N     E       U P B Y E     E|
 9|J   ' R     M   ' O   R '   D|
10|A B   E N " A G A V E S   "  |
11|  L   N O   F   M I X        |
12|' I   A N   I '   D   -     '|
13|  G A T E W A Y s       -    |
14|  H   E   "       "       -  |
15|= T   '       =       '     =|
   ------------------------------
`
	// JoeVsPaul, sourced from a Joe Edley column
	JoeVsPaul = `
joe: Turn 12
   A B C D E F G H I J K L M N O      joe                      LZ        296
   ------------------------------  -> paul                     ?AEIR     296
 1|=     '   B E R G S   '     =| --Tracking-----------------------------------
 2|  -     P A       U       -  | ILMZ 4
 3|    Q A I D '   U R N   -    |
 4|'     B E E   '   F   T S K '|
 5|  P   E T     V I A T I C    |
 6|M A   T A W       c     H "  |
 7|E S '     I S   ' E     A    |
 8|A T   F O L I A       ' V I M|
 9|L I ' L   E X   E       '    |
10|  N   O   D     N "   Y   "  |
11|  G N U -   C   J E T E      |
12|'   E R     O H O     N     '|
13|    O       G O Y       -    |
14|  I N D O W   U   "       -  |
15|=     ' D O R R       '     =|
   ------------------------------
`
	// VsJoel from Manhattan November 2019
	VsJoel = `
cesar: Turn 11
   A B C D E F G H I J K L M N O      joel s                   EIQSS     393
   ------------------------------  -> cesar                    AAFIRTW   373
 1|= L E M N I S C I     L   E R| --Tracking-----------------------------------
 2|  -       "   O   P A I N T  | EIQSS  5
 3|    -   A   ' L ' R A V E    |
 4|W E D G E     Z   I   R     '|
 5|        R   J A U N T E d    |
 6|  "     O X O     K       "  |
 7|    Y O B   '   P       '    |
 8|=     F A U N A E     '     =|
 9|    '   T   '   G U Y   '    |
10|  "       " B E S T E a D "  |
11|        -     T     H I E    |
12|'     -       H       - V U G|
13|    C O R M O I D       -    |
14|  -       "   O   "       -  |
15|=     '       N O N I D E A L|
   ------------------------------
`
)

// SetToGame sets the board to a specific game in progress. It is used to
// generate test cases.
func (g *GameBoard) SetToGame(alph *tilemapping.TileMapping, game VsWho) *TilesInPlay {
	tip := g.setFromPlaintext(string(game), alph)
	g.UpdateAllAnchors()
	return tip
}

package progression

// expToNext[i] is the experience needed to advance from level i+1.
var expToNext = [...]int{
	120, 150, 190, 230, 280, 340, 400, 470, 540, 620,
	710, 810, 920, 1040, 1170, 1310, 1460, 1620, 1790, 1970,
	2160, 2360, 2570, 2790, 3020, 3260, 3510, 3770, 4040,
}

// LevelCap is the highest reachable level.
const LevelCap = len(expToNext) + 1

// Attribute growth per level; index 0 is the gain on reaching level 2.
var (
	strGrowth = [...]int{2, 2, 3, 3, 4, 3, 4, 4, 5, 4, 5, 5, 6, 6, 7, 6, 7, 7, 8, 8, 9, 8, 9, 9, 10, 10, 11, 11, 12}
	vitGrowth = [...]int{3, 3, 3, 4, 4, 4, 5, 5, 5, 6, 6, 6, 7, 7, 7, 8, 8, 8, 9, 9, 9, 10, 10, 10, 11, 11, 11, 12, 12}
	agiGrowth = [...]int{1, 2, 2, 2, 3, 3, 3, 4, 4, 4, 5, 5, 5, 6, 6, 6, 7, 7, 7, 8, 8, 8, 9, 9, 9, 10, 10, 10, 11}
	wisGrowth = [...]int{1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4, 5, 5, 5, 6, 6, 6, 7, 7, 7, 8, 8, 8, 9, 9, 9, 10, 10, 10}
)

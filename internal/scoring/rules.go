package scoring

// JudgeGame decides whether a game is over at score a-b. Reaching the cap ends
// the game immediately and is checked before the two-point margin rule, so
// 30-29 under 21-point rules is a win.
func JudgeGame(a, b int, pointsToWin PointsToWin, ceiling int) (bool, Side) {
	if a >= ceiling || b >= ceiling {
		return true, leader(a, b)
	}
	target := int(pointsToWin)
	if (a >= target || b >= target) && abs(a-b) >= 2 {
		return true, leader(a, b)
	}
	return false, ""
}

// WinsIfScores reports whether awarding the next rally to who would end the
// game, i.e. who is on game point.
func WinsIfScores(a, b int, who Side, pointsToWin PointsToWin, ceiling int) bool {
	if who == SideA {
		a++
	} else {
		b++
	}
	over, _ := JudgeGame(a, b, pointsToWin, ceiling)
	return over
}

// IsDeuce reports a tie at or beyond one point short of the target while both
// scores are still below the cap.
func IsDeuce(a, b int, pointsToWin PointsToWin, ceiling int) bool {
	return a == b && a >= int(pointsToWin)-1 && a < ceiling && b < ceiling
}

func leader(a, b int) Side {
	if a > b {
		return SideA
	}
	return SideB
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

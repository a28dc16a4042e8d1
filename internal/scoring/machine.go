package scoring

// NewMatch returns the start-of-match state: no games played, A serving from
// the right court, formation as given.
func NewMatch(formation Formation) MatchState {
	return MatchState{
		Game:        GameState{},
		Server:      SideA,
		ServerCourt: CourtRight,
		Formation:   formation,
	}
}

// RecordPoint awards one rally to side. It is rejected (returns the input
// state and false) unless the match is in the Playing phase.
//
// In doubles the serving pair swaps positions when it wins a rally on its own
// serve. A change of service never rotates anyone.
func RecordPoint(s MatchState, settings MatchSettings, mode Mode, side Side) (MatchState, bool) {
	if !side.Valid() || s.Phase() != PhasePlaying {
		return s, false
	}

	next := s
	if side == SideA {
		next.Game.A++
	} else {
		next.Game.B++
	}
	next.Game.Over, next.Game.Winner = JudgeGame(next.Game.A, next.Game.B, settings.PointsToWin, settings.Cap)

	serve := NextServeState(Serve{Server: s.Server, Court: s.ServerCourt}, side, next.Game)
	next.Server, next.ServerCourt = serve.Server, serve.Court
	if mode == Doubles && side == s.Server {
		next.Formation = RotateServingPair(next.Formation, side)
	}

	if !next.Game.Over {
		return next, true
	}
	if next.GameIndex < len(next.FinishedGames) {
		next.FinishedGames[next.GameIndex] = next.Game
	}
	if next.Game.Winner == SideA {
		next.GamesWonA++
	} else {
		next.GamesWonB++
	}
	if next.gamesWon(next.Game.Winner) >= GamesNeeded(settings.BestOf) {
		next.MatchOver = true
		next.MatchWinner = next.Game.Winner
	}
	return next, true
}

// NextGame starts the following game once the current one is over and the
// match is not. The winner of the finished game serves first from the right.
// A finished game without a recorded winner keeps the current server.
func NextGame(s MatchState) (MatchState, bool) {
	if !s.Game.Over || s.MatchOver {
		return s, false
	}
	starter := s.Game.Winner
	if !starter.Valid() {
		starter = s.Server
	}
	next := s
	next.GameIndex++
	next.Game = GameState{}
	next.Server = starter
	next.ServerCourt = CourtRight
	return next, true
}

// ResetMatch discards all progress and returns a fresh match with the default
// formation.
func ResetMatch(defaults Formation) MatchState {
	return NewMatch(defaults)
}

// SwapServe hands the serve to the other side unconditionally. The court is
// recomputed from the new server's score; the formation does not rotate.
func SwapServe(s MatchState) MatchState {
	next := s
	next.Server = s.Server.Opponent()
	next.ServerCourt = CourtFromPoints(s.Game.score(next.Server))
	return next
}

// SwapLeftRight swaps the positions of side's pair regardless of who is
// serving. Only available in doubles.
func SwapLeftRight(s MatchState, mode Mode, side Side) (MatchState, bool) {
	if mode != Doubles || !side.Valid() {
		return s, false
	}
	next := s
	next.Formation = RotateServingPair(s.Formation, side)
	return next, true
}

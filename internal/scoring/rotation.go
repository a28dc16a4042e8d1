package scoring

// Serve is the serving side together with its service court.
type Serve struct {
	Server Side
	Court  Court
}

// CourtFromPoints maps a server's own score to a service court: even serves
// from the right, odd from the left.
func CourtFromPoints(points int) Court {
	if points%2 == 0 {
		return CourtRight
	}
	return CourtLeft
}

// NextServeState returns who serves after scoringSide won the rally and from
// which court. The court follows the parity of the (new) server's score after
// the point has been recorded.
func NextServeState(current Serve, scoringSide Side, after GameState) Serve {
	server := current.Server
	if scoringSide != current.Server {
		server = scoringSide
	}
	return Serve{Server: server, Court: CourtFromPoints(after.score(server))}
}

// RotateServingPair swaps left and right of the given side only.
func RotateServingPair(f Formation, side Side) Formation {
	p := f.pair(side)
	f.setPair(side, Pair{Left: p.Right, Right: p.Left})
	return f
}

package storage

import "testing"

func TestGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("skyroads")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	seed(t, store,
		Run{GameID: "skyroads", Score: 100, Ticks: 60, Cause: "Out of fuel"},
		Run{GameID: "skyroads", Score: 300, Ticks: 120, Cause: "Out of fuel"},
		Run{GameID: "skyroads", Score: 200, Ticks: 90, Cause: "Fell off the road"},
		Run{GameID: "skyroads", Score: 0},
		Run{GameID: "other", Score: 5000, Ticks: 1},
	)

	stats, err := store.GetGameStats("skyroads")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 4 || stats.HighScore != 300 || stats.TotalScore != 600 || stats.TotalTicks != 270 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 150 {
		t.Errorf("AvgScore = %v, expected 150", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestCauseCounts(t *testing.T) {
	store := openTestStore(t)
	seed(t, store,
		Run{GameID: "skyroads", Score: 1, Cause: "Out of fuel"},
		Run{GameID: "skyroads", Score: 2, Cause: "Out of fuel"},
		Run{GameID: "skyroads", Score: 3, Cause: "Fell off the road"},
		Run{GameID: "skyroads", Score: 4},
		Run{GameID: "other", Score: 5, Cause: "Out of fuel"},
	)

	causes, err := store.CauseCounts("skyroads")
	if err != nil {
		t.Fatalf("CauseCounts() failed: %v", err)
	}
	if len(causes) != 2 || causes["Out of fuel"] != 2 || causes["Fell off the road"] != 1 {
		t.Errorf("causes = %v", causes)
	}
}

func TestHighScoreAndRank(t *testing.T) {
	store := openTestStore(t)

	if high, err := store.HighScore("skyroads"); err != nil || high != 0 {
		t.Fatalf("empty HighScore() = %d, %v", high, err)
	}

	seed(t, store,
		Run{GameID: "skyroads", Score: 400},
		Run{GameID: "skyroads", Score: 300},
		Run{GameID: "skyroads", Score: 100},
	)

	if high, _ := store.HighScore("skyroads"); high != 400 {
		t.Errorf("HighScore() = %d, expected 400", high)
	}

	tests := []struct {
		score, want int
	}{
		{500, 1},
		{400, 1},
		{300, 2},
		{250, 3},
		{50, 4},
	}
	for _, tt := range tests {
		rank, err := store.Rank("skyroads", tt.score)
		if err != nil {
			t.Fatalf("Rank() failed: %v", err)
		}
		if rank != tt.want {
			t.Errorf("Rank(%d) = %d, expected %d", tt.score, rank, tt.want)
		}
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)
	seed(t, store,
		Run{GameID: "skyroads", Score: 100},
		Run{GameID: "skyroads", Score: 200},
		Run{GameID: "other", Score: 300},
	)

	n, err := store.ClearScores("skyroads")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("ClearScores() removed %d runs, expected 2", n)
	}

	if left, _ := store.AllScores("skyroads"); len(left) != 0 {
		t.Errorf("%d runs left after clear", len(left))
	}
	if other, _ := store.AllScores("other"); len(other) != 1 {
		t.Error("other games should keep their runs")
	}
}

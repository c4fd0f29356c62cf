package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"match-lab/domain"
)

func TestJaccard_PartialOverlap(t *testing.T) {
	req := require.New(t)

	// Given two users sharing one tag out of three distinct ones
	a := []string{"#ai", "#startups"}
	b := []string{"#ai", "#music"}

	// Then intersection is 1 and union is 3
	req.InDelta(1.0/3.0, Jaccard(a, b), 1e-9)
}

func TestJaccard_IdenticalSets(t *testing.T) {
	req := require.New(t)
	req.Equal(1.0, Jaccard([]string{"#go", "#db"}, []string{"#db", "#go"}))
}

func TestJaccard_Disjoint(t *testing.T) {
	req := require.New(t)
	req.Equal(0.0, Jaccard([]string{"#go"}, []string{"#rust"}))
}

func TestJaccard_BothEmpty(t *testing.T) {
	req := require.New(t)

	// Two users with no tags are not a perfect match
	req.Equal(0.0, Jaccard(nil, nil))
}

func TestJaccard_CollapsesDuplicates(t *testing.T) {
	req := require.New(t)
	req.Equal(1.0, Jaccard([]string{"#go", "#go"}, []string{"#go"}))
}

func TestFindBestMatch_AboveFloor(t *testing.T) {
	req := require.New(t)
	now := time.Now().UTC()

	entry := entryAt("alice", []string{"#ai", "#startups"}, now)
	candidates := []domain.QueueEntry{
		entryAt("bob", []string{"#ai", "#music"}, now),
		entryAt("clara", []string{"#cooking"}, now),
	}

	// When looking for a partner at the default floor
	best, score, found := FindBestMatch(entry, candidates, 0.2)

	// Then the one-in-three overlap clears 0.2
	req.True(found)
	req.Equal("bob", best.UserID)
	req.InDelta(1.0/3.0, score, 1e-9)
}

func TestFindBestMatch_BelowFloor(t *testing.T) {
	req := require.New(t)
	now := time.Now().UTC()

	entry := entryAt("alice", []string{"#ai", "#startups"}, now)
	candidates := []domain.QueueEntry{entryAt("bob", []string{"#ai", "#music"}, now)}

	// A stricter floor rejects the same pair
	_, _, found := FindBestMatch(entry, candidates, 0.5)
	req.False(found)
}

func TestFindBestMatch_TieGoesToLongestWaiting(t *testing.T) {
	req := require.New(t)
	now := time.Now().UTC()

	entry := entryAt("alice", []string{"#ai"}, now)
	candidates := []domain.QueueEntry{
		entryAt("bob", []string{"#ai"}, now.Add(-1*time.Minute)),
		entryAt("clara", []string{"#ai"}, now.Add(-5*time.Minute)),
	}

	best, _, found := FindBestMatch(entry, candidates, 0.2)

	req.True(found)
	req.Equal("clara", best.UserID)
}

func TestFindBestMatch_EmptyHashtagsNeverMatch(t *testing.T) {
	req := require.New(t)
	now := time.Now().UTC()

	// Given a user with no tags at all
	entry := entryAt("alice", nil, now)
	candidates := []domain.QueueEntry{entryAt("bob", nil, now)}

	_, _, found := FindBestMatch(entry, candidates, 0.2)

	// Then the similarity pass skips them entirely
	req.False(found)
}

func TestFindBestMatch_SkipsSelf(t *testing.T) {
	req := require.New(t)
	now := time.Now().UTC()

	entry := entryAt("alice", []string{"#ai"}, now)
	candidates := []domain.QueueEntry{entryAt("alice", []string{"#ai"}, now)}

	_, _, found := FindBestMatch(entry, candidates, 0.2)
	req.False(found)
}

func entryAt(userID string, hashtags []string, at time.Time) domain.QueueEntry {
	return domain.QueueEntry{UserID: userID, Hashtags: hashtags, EnqueuedAt: at}
}

package cache

import (
	"sync"

	"github.com/redis/go-redis/v9"

	"platinalab.dev/backend/internal/model"
	"platinalab.dev/backend/internal/pkg/cache"
)

type Flusher func() error

var (
	Songs            *cache.Singular[[]*model.Song]
	PatternsBySongID *cache.Set[[]*model.Pattern]

	LeaderboardByLine *cache.Set[[]*model.LeaderboardEntry]

	StatsByPlayerAndLine *cache.Set[model.PlayerStats]

	ArchiveByPlayerID *cache.Set[[]*model.ArchiveEntry]

	once sync.Once

	SetMap             map[string]Flusher
	SingularFlusherMap map[string]Flusher
)

func Initialize(client *redis.Client) {
	once.Do(func() {
		initializeCaches(client)
	})
}

func Flush(name string) error {
	if flush, ok := SetMap[name]; ok {
		return flush()
	}
	if flush, ok := SingularFlusherMap[name]; ok {
		return flush()
	}
	return nil
}

func FlushAll() error {
	for _, flush := range SetMap {
		if err := flush(); err != nil {
			return err
		}
	}
	for _, flush := range SingularFlusherMap {
		if err := flush(); err != nil {
			return err
		}
	}
	return nil
}

func initializeCaches(client *redis.Client) {
	SetMap = make(map[string]Flusher)
	SingularFlusherMap = make(map[string]Flusher)

	// catalog
	Songs = cache.NewSingular[[]*model.Song]("songs")
	PatternsBySongID = cache.NewSet[[]*model.Pattern](client, "patterns#songId")

	SingularFlusherMap["songs"] = Songs.Delete
	SetMap["patterns#songId"] = PatternsBySongID.Flush

	// leaderboard
	LeaderboardByLine = cache.NewSet[[]*model.LeaderboardEntry](client, "leaderboard#line")

	SetMap["leaderboard#line"] = LeaderboardByLine.Flush

	// player stats
	StatsByPlayerAndLine = cache.NewSet[model.PlayerStats](client, "stats#playerId|line")

	SetMap["stats#playerId|line"] = StatsByPlayerAndLine.Flush

	// archive
	ArchiveByPlayerID = cache.NewSet[[]*model.ArchiveEntry](client, "archive#playerId")

	SetMap["archive#playerId"] = ArchiveByPlayerID.Flush
}

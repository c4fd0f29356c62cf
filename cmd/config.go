package main

import "time"

// Config is the single source of truth for every tunable: the similarity
// floor, the timeout window, and the loop schedules are set here once
// instead of being passed ad hoc from different call sites.
type Config struct {
	Host           string `env:"HOST,default=0.0.0.0"`
	Port           int    `env:"PORT,default=8080"`
	LogLevel       string `env:"LOG_LEVEL,default=info"`
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`

	AuthSecret        string        `env:"AUTH_SECRET,required=true"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
	RoomTokenDuration time.Duration `env:"ROOM_TOKEN_DURATION,default=1h"`

	MinSimilarity float64       `env:"MIN_SIMILARITY,default=0.2"`
	MatchTimeout  time.Duration `env:"MATCH_TIMEOUT,default=1m"`
	MatchTTL      time.Duration `env:"MATCH_TTL,default=30m"`

	MatchingInterval  time.Duration `env:"MATCHING_INTERVAL,default=10s"`
	TimeoutInterval   time.Duration `env:"TIMEOUT_INTERVAL,default=30s"`
	PresenceInterval  time.Duration `env:"PRESENCE_INTERVAL,default=15s"`
	TelemetryInterval time.Duration `env:"TELEMETRY_INTERVAL,default=1m"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,default=200ms"`

	HeartbeatInterval  time.Duration `env:"HEARTBEAT_INTERVAL,default=45s"`
	MaxMissedPings     int           `env:"MAX_MISSED_PINGS,default=3"`
	PresenceTTL        time.Duration `env:"PRESENCE_TTL,default=60s"`
	SendBufferSize     int           `env:"SEND_BUFFER_SIZE,default=64"`
	SocketAuthDeadline time.Duration `env:"SOCKET_AUTH_DEADLINE,default=30s"`

	WaitPerPosition time.Duration `env:"WAIT_ESTIMATE_PER_POSITION,default=15s"`
	PriorityWeight  int64         `env:"PRIORITY_WEIGHT,default=10000000000"`
	MaxHashtags     int           `env:"MAX_HASHTAGS,default=10"`
	BlockedHashtags []string      `env:"BLOCKED_HASHTAGS"`
}

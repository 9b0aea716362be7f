package setup

import (
	"context"
	"errors"
	"time"

	"github.com/itchan-dev/agora/backend/internal/handler"
	"github.com/itchan-dev/agora/backend/internal/ranking"
	"github.com/itchan-dev/agora/backend/internal/service"
	"github.com/itchan-dev/agora/backend/internal/storage/pg"
	"github.com/itchan-dev/agora/backend/internal/utils"
	"github.com/itchan-dev/agora/shared/config"
	"github.com/itchan-dev/agora/shared/jwt"
	"github.com/itchan-dev/agora/shared/logger"
	mw "github.com/itchan-dev/agora/shared/middleware"
	rl "github.com/itchan-dev/agora/shared/middleware/ratelimiter"
	"github.com/redis/go-redis/v9"
)

const limiterExpiration = time.Hour

// Limiters holds the rate limiters the router installs.
type Limiters struct {
	Write  rl.Limiter // per user, all mutating endpoints
	Search rl.Limiter // per IP
}

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        *pg.Storage
	Handler        *handler.Handler
	AuthMiddleware *mw.Auth
	Limiters       Limiters

	redis    *redis.Client
	inMemory []*rl.UserRateLimiter
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	scorer, err := ranking.NewScorer(cfg.Public.SearchMode)
	if err != nil {
		return nil, err
	}

	storage, err := pg.New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	deps := &Dependencies{Config: cfg, Storage: storage}

	if cfg.Private.Redis.Addr != "" {
		deps.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Private.Redis.Addr,
			Password: cfg.Private.Redis.Password,
			DB:       cfg.Private.Redis.DB,
		})
		if err := deps.redis.Ping(ctx).Err(); err != nil {
			// limiter fails open, so an unreachable redis is not fatal
			logger.Log.Warn("redis is unreachable, rate limits are not enforced until it recovers", "addr", cfg.Private.Redis.Addr, "error", err)
		}
	}
	deps.Limiters = Limiters{
		Write:  deps.newLimiter("write", 1, 5),
		Search: deps.newLimiter("search", 5, 10),
	}

	validator := utils.New(&cfg.Public)
	feed := service.NewFeed(storage, scorer, validator)
	thread := service.NewThread(storage, validator)
	comment := service.NewComment(storage, validator, service.OwnerPolicy{})
	like := service.NewLike(storage)

	deps.Handler = handler.New(feed, thread, comment, like, storage, cfg)
	deps.AuthMiddleware = mw.NewAuth(jwt.New(cfg.JwtKey(), cfg.JwtTTL()))

	logger.Log.Info("dependencies ready", "search_mode", scorer.Mode(), "redis", deps.redis != nil)
	return deps, nil
}

// newLimiter shares buckets through redis when configured, otherwise keeps them in memory.
func (d *Dependencies) newLimiter(name string, rate, capacity float64) rl.Limiter {
	if d.redis != nil {
		return rl.NewRedis(d.redis, "agora:ratelimit:"+name, rate, capacity, limiterExpiration)
	}
	l := rl.New(rate, capacity, limiterExpiration)
	d.inMemory = append(d.inMemory, l)
	return l
}

func (d *Dependencies) Cleanup() error {
	for _, l := range d.inMemory {
		l.Stop()
	}
	var errs []error
	if d.redis != nil {
		errs = append(errs, d.redis.Close())
	}
	if d.Storage != nil {
		errs = append(errs, d.Storage.Cleanup())
	}
	return errors.Join(errs...)
}

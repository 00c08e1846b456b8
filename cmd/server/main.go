package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Solara-Media-LLC/helios/internal/db"
	"github.com/Solara-Media-LLC/helios/internal/notify"
	redisclient "github.com/Solara-Media-LLC/helios/internal/redis"
	"github.com/Solara-Media-LLC/helios/internal/schedule"
)

func main() {
	env := LoadEnvironment()

	if env.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
		log.Logger = log.Output(os.Stderr)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := db.Init(env.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	if err := db.RunMigrations(env.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	store := db.NewStore()

	// notification fan-out: MQTT to displays, redis mirror for other instances
	var sinks notify.MultiSink
	if env.MQTTBrokerURL != "" {
		mqttSink, err := notify.NewMQTTSink(env.MQTTBrokerURL, env.MQTTClientID, env.MQTTTopic, log.Logger)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to MQTT broker")
		}
		defer mqttSink.Close()
		sinks = append(sinks, mqttSink)
	} else {
		log.Warn().Msg("MQTT broker not configured, display notifications disabled")
	}

	rdb := redisclient.New(env.RedisAddress, env.RedisUsername, env.RedisPassword, log.Logger)
	defer rdb.Close()
	sinks = append(sinks, notify.NewRedisSink(rdb))

	// resolution plumbing shared by the monitor loop and the viewer endpoint
	clock := schedule.SystemClock()
	resolver := schedule.NewResolver(log.Logger)
	cache := schedule.NewResultCache(schedule.DefaultResultTTL, clock)
	engine := schedule.NewEngine(store, resolver, cache, clock, log.Logger)
	monitor := schedule.NewMonitor(store, resolver, cache, sinks, clock, env.TickInterval, log.Logger)

	monitor.Start()
	defer monitor.Stop()

	r := gin.Default()
	RegisterRoutes(r, env, store, engine, monitor.Tick)

	// shut the monitor down cleanly on SIGINT/SIGTERM
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		monitor.Stop()
		os.Exit(0)
	}()

	log.Info().Str("address", env.ServerAddress).Msg("server listening")
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	clog "log"
	"net/http"
	"os"
	"path"
	"time"

	log "github.com/go-kit/kit/log"
	_ "github.com/go-sql-driver/mysql"
	"github.com/kardianos/osext"
	service1 "github.com/kardianos/service"
	group "github.com/oklog/oklog/pkg/group"
	"github.com/spf13/viper"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"github.com/oracom/socolissimo/colissimo"
	"github.com/oracom/socolissimo/journal"
	"github.com/oracom/socolissimo/journal/repo"
	"github.com/oracom/socolissimo/label"
)

//demon logger
var dLogger service1.Logger

type program struct {
	group     *group.Group
	rep       journal.Journal
	interrupt chan struct{}
	quit      chan struct{}
}

//start os demon or console using kardianos
func main() {
	err := readConfig()
	if err != nil {
		clog.Fatal(err)
		return
	}

	svcConfig := &service1.Config{
		Name:        "SoColissimo",
		DisplayName: "SoColissimo label proxy",
		Description: "Proxy for the SoColissimo labeling web service",
	}
	prg := &program{}

	s, err := service1.New(prg, svcConfig)
	if err != nil {
		clog.Fatal(err)
		return
	}
	if len(os.Args) > 1 {
		err = service1.Control(s, os.Args[1])
		if err != nil {
			clog.Fatal(err)
		}
		return
	}
	dLogger, err = s.Logger(nil)
	if err != nil {
		clog.Fatal(err)
	}
	err = s.Run()
	if err != nil {
		dLogger.Error(err)
	}
}

func (p *program) Start(s service1.Service) error {
	g, rep, err := initProxy()
	if err != nil {
		return err
	}

	p.group = g
	p.rep = rep
	p.interrupt = make(chan struct{})
	p.quit = make(chan struct{})

	if service1.Interactive() {
		dLogger.Info("Running in terminal.")
		dLogger.Infof("Valid startup parametrs: %q\n", service1.ControlAction)
	} else {
		dLogger.Info("Starting SoColissimo service...")
	}
	// Start should not block. Do the actual work async.
	go p.run()
	return nil
}

func (p *program) run() {
	//close db cnn
	defer func() {
		if p.rep != nil {
			p.rep.Close()
		}
	}()
	running := make(chan struct{})
	//initCancelInterrupt
	p.group.Add(
		func() error {
			select {
			case <-p.interrupt:
				return errors.New("SoColissimo: Get interrupt signal")
			case <-running:
				return nil
			}
		}, func(error) {
			close(running)
		})
	dLogger.Info("SoColissimo started")
	dLogger.Info(p.group.Run())
	close(p.quit)
}

func (p *program) Stop(s service1.Service) error {
	// Stop should not block. Return with a few seconds.
	dLogger.Info("SoColissimo Stopping!")
	//interrupt service
	close(p.interrupt)
	//waite service stops
	<-p.quit
	dLogger.Info("SoColissimo stopped")
	return nil
}

func initProxy() (*group.Group, journal.Journal, error) {
	if viper.GetString("proxy.address") == "" {
		return nil, nil, errors.New("Proxy host:port is not set")
	}

	logger := initLoger(viper.GetString("folders.log"), "socolissimo")

	creds, err := colissimo.ResolveCredentials("", "")
	if err != nil {
		logger.Log("Credentials error", err.Error())
		return nil, nil, err
	}

	cli := &http.Client{Timeout: time.Second * time.Duration(viper.GetInt("timeout"))}
	if viper.GetBool("debug") {
		dLogger.Info("Run in debug mode.")
	}
	svc, err := colissimo.New(viper.GetString("endpoint"), viper.GetString("supervision"), creds,
		defaultHTTPOptions(cli, nil, viper.GetBool("debug")), defaultHTTPMiddleware(log.With(logger, "level", "transport")))
	if err != nil {
		logger.Log("Client error", err.Error())
		return nil, nil, err
	}

	//create journal, optional
	var rep journal.Journal
	if viper.GetString("mysql") != "" {
		rep, err = repo.New(viper.GetString("mysql"))
		if err != nil {
			logger.Log("Open database error", err.Error())
			return nil, nil, fmt.Errorf("Database connection error %s", err.Error())
		}
	}

	g := &group.Group{}

	pcfg := label.HandlerConfig{
		Service: svc,
		Journal: rep,
		Loader:  label.NewDownloader(viper.GetString("folders.labels"), log.With(logger, "level", "loader")),
		Logger:  logger,
	}

	server := &http.Server{
		Addr:         viper.GetString("proxy.address"),
		Handler:      label.NewHandler(&pcfg),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  15 * 60 * time.Second,
	}
	g.Add(func() error {
		dLogger.Info(fmt.Sprintf("Starting label proxy at %s.", server.Addr))
		return server.ListenAndServe()
	}, func(error) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	})

	return g, rep, nil
}

func initLoger(logPath, fileName string) log.Logger {
	var logger log.Logger
	if logPath == "" {
		logger = log.NewLogfmtLogger(os.Stderr)
	} else {
		if fileName == "" {
			fileName = "log"
		}
		p := path.Join(logPath, fmt.Sprintf("%s.log", fileName))
		logger = log.NewLogfmtLogger(&lumberjack.Logger{
			Filename:   p,
			MaxSize:    5, // megabytes
			MaxBackups: 5,
			MaxAge:     60, //days
		})
	}
	logger = log.With(logger, "ts", log.DefaultTimestamp)
	logger = log.With(logger, "caller", log.DefaultCaller)

	return logger
}

//readConfig init/read viper config
func readConfig() error {

	viper.SetDefault(colissimo.KeyContractNumber, "") //merchant contract number
	viper.SetDefault(colissimo.KeyPassword, "")       //merchant password
	viper.SetDefault("endpoint", "")                  //letter service url (empty - production)
	viper.SetDefault("supervision", "")               //supervision url (empty - production)
	viper.SetDefault("proxy.address", ":8888")        //localhost
	viper.SetDefault("folders.log", "")               //log folder (empty - stderr)
	viper.SetDefault("folders.labels", ".")           //work folder for downloaded label pdf
	viper.SetDefault("mysql", "")                     //MySQL connection string, empty disables the journal
	viper.SetDefault("timeout", 30)                   //web service call timeout (sec)
	viper.SetDefault("debug", false)                  //dump raw web service responses

	path, err := osext.ExecutableFolder()
	if err != nil {
		path = "."
	}
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

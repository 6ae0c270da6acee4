package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dailyreview/config"
	"dailyreview/controllers"
	"dailyreview/routes"
	"dailyreview/services"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// 加载配置
	conf, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	// 初始化日志
	if err := config.InitLogger(conf.LogDir, conf.IsProduction()); err != nil {
		return err
	}
	defer config.Logger.Sync()

	// 初始化数据库
	db, err := config.OpenDB(conf)
	if err != nil {
		return err
	}
	defer config.CloseDB(db)

	// 初始化下游
	publisher, archiver, err := newSinks(ctx, conf)
	if err != nil {
		return err
	}

	service := services.NewFormdataService(services.NewGormFormdataStore(db), publisher, archiver)
	defer func() {
		if err := service.Close(); err != nil {
			config.Logger.Warnw("关闭下游连接失败", "error", err)
		}
	}()

	// 设置Gin模式
	if conf.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := routes.NewRouter(conf.GetCORSAllowOrigins(), controllers.NewFormdataController(service), conf.InternalAuthToken)

	// 创建HTTP服务器
	srv := &http.Server{
		Addr:    ":" + conf.ServerPort,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		config.Logger.Infow("启动服务器", "port", conf.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 等待中断信号以实现优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-errCh:
		return err
	}
	config.Logger.Info("正在关闭服务器...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	config.Logger.Info("服务器已关闭")
	return nil
}

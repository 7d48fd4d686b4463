package main

import (
	"context"
	"fmt"

	aiopenai "github.com/Abraxas-365/talentdesk/pkg/ai/providers/openai"
	"github.com/Abraxas-365/talentdesk/pkg/ai/embedding"
	"github.com/Abraxas-365/talentdesk/pkg/ai/llm"
	"github.com/Abraxas-365/talentdesk/pkg/ai/speech"
	"github.com/Abraxas-365/talentdesk/pkg/config"
	"github.com/Abraxas-365/talentdesk/pkg/dashboard"
	"github.com/Abraxas-365/talentdesk/pkg/dashboard/dashboardapi"
	"github.com/Abraxas-365/talentdesk/pkg/filter"
	"github.com/Abraxas-365/talentdesk/pkg/fsx"
	"github.com/Abraxas-365/talentdesk/pkg/fsx/fsxlocal"
	"github.com/Abraxas-365/talentdesk/pkg/fsx/fsxs3"
	"github.com/Abraxas-365/talentdesk/pkg/iam/auth"
	"github.com/Abraxas-365/talentdesk/pkg/logx"
	"github.com/Abraxas-365/talentdesk/pkg/masterdata"
	"github.com/Abraxas-365/talentdesk/pkg/masterdata/mastersrv"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/candidate"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/candidate/candidateapi"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/candidate/candidatesrv"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/interview"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/interview/interviewapi"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/interview/interviewsrv"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/job"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/job/jobapi"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/job/jobsrv"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/resume"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/resume/resumeapi"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/resume/resumesrv"
	"github.com/Abraxas-365/talentdesk/pkg/seed"
	"github.com/Abraxas-365/talentdesk/pkg/store"
	"github.com/Abraxas-365/talentdesk/pkg/store/storeinfra"
	"github.com/Abraxas-365/talentdesk/pkg/views"
	"github.com/Abraxas-365/talentdesk/pkg/views/viewsapi"
	"github.com/Abraxas-365/talentdesk/pkg/views/viewsinfra"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config

	// Infrastructure (DB and Redis are nil when disabled)
	DB         *sqlx.DB
	Redis      *redis.Client
	FileSystem fsx.FileSystem
	S3Client   *s3.Client

	// AI clients, nil without an API key
	LLM       *llm.Client
	Embedding *embedding.Client
	STT       *speech.STTClient

	// Repositories
	Repositories seed.Repositories

	// Services
	TokenService *auth.JWTService
	Jobs         *jobsrv.Service
	Extractor    *jobsrv.Extractor
	Resumes      *resumesrv.Service
	Candidates   *candidatesrv.Service
	Interviews   *interviewsrv.Service
	MasterData   mastersrv.Services
	Dashboard    *dashboard.Service
	Views        *views.Service

	// Handlers
	JobHandlers       *jobapi.Handlers
	ResumeHandlers    *resumeapi.Handlers
	CandidateHandlers *candidateapi.Handlers
	InterviewHandlers *interviewapi.Handlers
	DashboardHandlers *dashboardapi.Handlers
	ViewHandlers      *viewsapi.Handlers

	// Middleware
	AuthMiddleware *auth.Middleware
}

// NewContainer initializes the dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	logx.Info("🔧 Initializing dependency container...")

	c := &Container{
		Config: cfg,
	}

	if err := c.initInfrastructure(ctx); err != nil {
		c.Cleanup()
		return nil, err
	}
	c.initAI()
	c.initRepositories()
	c.initServices()

	if cfg.Server.SeedData {
		written, err := seed.Load(ctx, c.Repositories)
		if err != nil {
			c.Cleanup()
			return nil, fmt.Errorf("failed to seed data: %w", err)
		}
		if len(written) > 0 {
			logx.WithFields(logx.Fields{"entities": len(written)}).Info("🌱 Demo data loaded")
		}
	}

	logx.Info("✅ Container initialized successfully")
	return c, nil
}

func (c *Container) initInfrastructure(ctx context.Context) error {
	logx.Info("🏗️ Initializing infrastructure...")

	// 1. Database Connection (optional; memory repositories otherwise)
	if c.Config.Database.Enabled {
		db, err := sqlx.ConnectContext(ctx, "postgres", c.Config.Database.DSN())
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		db.SetMaxOpenConns(c.Config.Database.MaxOpenConns)
		db.SetMaxIdleConns(c.Config.Database.MaxIdleConns)
		db.SetConnMaxLifetime(c.Config.Database.ConnMaxLifetime)
		c.DB = db
		logx.Info("✅ Database connected")

		if c.Config.Database.AutoMigrate {
			if err := storeinfra.Migrate(db); err != nil {
				return err
			}
		}
	} else {
		logx.Warn("⚠️  Database disabled, records live in memory")
	}

	// 2. Redis Connection (saved views)
	if c.Config.Redis.Enabled {
		c.Redis = redis.NewClient(&redis.Options{
			Addr:     c.Config.Redis.Address(),
			Password: c.Config.Redis.Password,
			DB:       c.Config.Redis.DB,
		})
		if _, err := c.Redis.Ping(ctx).Result(); err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		logx.Info("✅ Redis connected")
	}

	// 3. File Storage Configuration (Local or S3)
	return c.initFileStorage(ctx)
}

func (c *Container) initFileStorage(ctx context.Context) error {
	storage := c.Config.Storage

	switch storage.Provider {
	case config.StorageS3:
		cfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(storage.S3Region))
		if err != nil {
			return fmt.Errorf("unable to load AWS SDK config: %w", err)
		}
		c.S3Client = s3.NewFromConfig(cfg)
		c.FileSystem = fsxs3.NewS3FileSystem(c.S3Client, storage.S3Bucket, storage.S3Prefix)
		logx.Infof("✅ S3 file system configured (bucket: %s, region: %s)", storage.S3Bucket, storage.S3Region)

	default:
		localFS, err := fsxlocal.NewLocalFileSystem(storage.LocalPath)
		if err != nil {
			return fmt.Errorf("failed to initialize local file system: %w", err)
		}
		c.FileSystem = localFS
		logx.Infof("✅ Local file system configured (path: %s)", localFS.GetBasePath())
	}
	return nil
}

func (c *Container) initAI() {
	if !c.Config.AI.Enabled() {
		logx.Warn("⚠️  OPENAI_API_KEY not set: JD extraction and transcription disabled, fitment uses skill match")
		return
	}

	provider := aiopenai.NewFromConfig(c.Config.AI)
	c.LLM = llm.NewClient(provider)
	c.Embedding = embedding.NewClient(provider)
	c.STT = speech.NewSTTClient(provider)
	logx.Infof("✅ OpenAI enabled (chat: %s, embeddings: %s)", c.Config.AI.ChatModel, c.Config.AI.EmbeddingModel)
}

func (c *Container) initRepositories() {
	if c.DB == nil {
		c.Repositories = seed.Repositories{
			Resumes:    store.NewMemoryRepository[resume.Resume](resume.Entity),
			Jobs:       store.NewMemoryRepository[job.Job](job.Entity),
			Candidates: store.NewMemoryRepository[candidate.Candidate](candidate.Entity),
			Interviews: store.NewMemoryRepository[interview.Round](interview.Entity),
			Master:     mastersrv.MemoryRepositories(),
		}
		return
	}

	c.Repositories = seed.Repositories{
		Resumes:    storeinfra.NewPostgresRepository[resume.Resume](c.DB, resume.Entity),
		Jobs:       storeinfra.NewPostgresRepository[job.Job](c.DB, job.Entity),
		Candidates: storeinfra.NewPostgresRepository[candidate.Candidate](c.DB, candidate.Entity),
		Interviews: storeinfra.NewPostgresRepository[interview.Round](c.DB, interview.Entity),
		Master: mastersrv.Repositories{
			Organizations: storeinfra.NewPostgresRepository[masterdata.Organization](c.DB, masterdata.EntityOrganization),
			Locations:     storeinfra.NewPostgresRepository[masterdata.Location](c.DB, masterdata.EntityLocation),
			BusinessUnits: storeinfra.NewPostgresRepository[masterdata.BusinessUnit](c.DB, masterdata.EntityBusinessUnit),
			Divisions:     storeinfra.NewPostgresRepository[masterdata.Division](c.DB, masterdata.EntityDivision),
			Departments:   storeinfra.NewPostgresRepository[masterdata.Department](c.DB, masterdata.EntityDepartment),
			Roles:         storeinfra.NewPostgresRepository[masterdata.Role](c.DB, masterdata.EntityRole),
			Employees:     storeinfra.NewPostgresRepository[masterdata.Employee](c.DB, masterdata.EntityEmployee),
		},
	}
}

func (c *Container) initServices() {
	logx.Info("🗄️  Initializing services...")
	storage := c.Config.Storage

	// --- Recruiting ---
	c.Jobs = jobsrv.NewService(c.Repositories.Jobs)
	c.Extractor = jobsrv.NewExtractor(c.LLM, c.FileSystem, storage.MaxUploadBytes)
	c.Resumes = resumesrv.NewService(c.Repositories.Resumes, c.FileSystem, storage.MaxUploadBytes)

	var scorer candidatesrv.Scorer = candidatesrv.SkillScorer{}
	if c.Embedding != nil {
		scorer = candidatesrv.NewEmbeddingScorer(c.Embedding, candidatesrv.SkillScorer{})
	}
	c.Candidates = candidatesrv.NewService(c.Repositories.Candidates, c.Jobs, c.Resumes, scorer)
	c.Interviews = interviewsrv.NewService(c.Repositories.Interviews, c.Jobs, c.Candidates,
		c.FileSystem, c.STT, storage.MaxRecordingBytes)

	// --- Admin tables ---
	c.MasterData = mastersrv.NewServices(c.Repositories.Master)

	// --- Dashboard ---
	c.Dashboard = dashboard.NewService(c.Resumes, c.Jobs, c.Candidates, c.Interviews)

	// --- Saved views ---
	var viewRepo views.Repository = views.NewMemoryRepository(c.Config.Redis.ViewTTL)
	if c.Redis != nil {
		viewRepo = viewsinfra.NewRedisRepository(c.Redis, c.Config.Redis.ViewTTL)
	}
	c.Views = views.NewService(viewRepo, c.Adapters()...)

	// --- Auth ---
	if c.Config.Auth.Enabled {
		c.TokenService = auth.NewJWTServiceFromConfig(&c.Config.Auth.JWT)
		c.AuthMiddleware = auth.NewMiddleware(c.TokenService, true, c.Config.Auth.Cookie.AccessTokenName)
	} else {
		logx.Warn("⚠️  Auth disabled, every request acts as the anonymous recruiter")
		c.AuthMiddleware = auth.NewMiddleware(nil, false, "")
	}

	// --- API Handlers ---
	c.JobHandlers = jobapi.NewHandlers(c.Jobs, c.Extractor, c.Views)
	c.ResumeHandlers = resumeapi.NewHandlers(c.Resumes, c.Views)
	c.CandidateHandlers = candidateapi.NewHandlers(c.Candidates, c.Views)
	c.InterviewHandlers = interviewapi.NewHandlers(c.Interviews, c.Views)
	c.DashboardHandlers = dashboardapi.NewHandlers(c.Dashboard, c.Views)
	c.ViewHandlers = viewsapi.NewHandlers(c.Views)

	logx.Info("✅ All services and handlers initialized")
}

// Adapters lists every filterable screen
func (c *Container) Adapters() []*filter.Adapter {
	return append([]*filter.Adapter{
		c.Resumes.Records().Adapter(),
		c.Jobs.Records().Adapter(),
		c.Candidates.Records().Adapter(),
		c.Interviews.Records().Adapter(),
	}, c.MasterData.Adapters()...)
}

// Adapter finds the screen named entity
func (c *Container) Adapter(entity string) (*filter.Adapter, bool) {
	for _, a := range c.Adapters() {
		if a.Entity() == entity {
			return a, true
		}
	}
	return nil, false
}

// Cleanup closes all connections
func (c *Container) Cleanup() {
	logx.Info("🧹 Cleaning up resources...")

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			logx.Errorf("Error closing database: %v", err)
		} else {
			logx.Info("✅ Database connection closed")
		}
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logx.Errorf("Error closing Redis: %v", err)
		} else {
			logx.Info("✅ Redis connection closed")
		}
	}

	logx.Info("✅ Cleanup completed")
}

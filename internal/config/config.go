package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения для lib/pq
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ScheduleConfig рабочий календарь клинеров
type ScheduleConfig struct {
	ShiftStart    string `toml:"shift_start"`     // "08:00"
	ShiftEnd      string `toml:"shift_end"`       // "22:00"
	BreakMinutes  int    `toml:"break_minutes"`   // перерыв между уборками
	NonWorkingDay string `toml:"non_working_day"` // "Friday"
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("server.http_port must be positive, got %d", c.Server.HTTPPort)
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if c.Schedule.ShiftStart != "" || c.Schedule.ShiftEnd != "" {
		if _, err := c.DomainSchedule(); err != nil {
			return err
		}
	}
	return nil
}

// DomainSchedule конвертирует конфигурацию календаря в доменную модель.
// Незаполненные поля получают значения по умолчанию.
func (c *Config) DomainSchedule() (domain.Schedule, error) {
	schedule := domain.DefaultSchedule()

	if c.Schedule.ShiftStart != "" {
		shiftStart, err := types.NewTimeStringFromString(c.Schedule.ShiftStart)
		if err != nil {
			return domain.Schedule{}, fmt.Errorf("invalid schedule.shift_start %q: %w", c.Schedule.ShiftStart, err)
		}
		schedule.ShiftStart = shiftStart
	}

	if c.Schedule.ShiftEnd != "" {
		shiftEnd, err := types.NewTimeStringFromString(c.Schedule.ShiftEnd)
		if err != nil {
			return domain.Schedule{}, fmt.Errorf("invalid schedule.shift_end %q: %w", c.Schedule.ShiftEnd, err)
		}
		schedule.ShiftEnd = shiftEnd
	}

	if !schedule.ShiftStart.IsBefore(schedule.ShiftEnd) {
		return domain.Schedule{}, fmt.Errorf("schedule.shift_start %q must be before schedule.shift_end %q",
			schedule.ShiftStart, schedule.ShiftEnd)
	}

	if c.Schedule.BreakMinutes > 0 {
		schedule.BreakMinutes = c.Schedule.BreakMinutes
	}

	if c.Schedule.NonWorkingDay != "" {
		weekday, err := parseWeekday(c.Schedule.NonWorkingDay)
		if err != nil {
			return domain.Schedule{}, err
		}
		schedule.NonWorkingDay = weekday
	}

	return schedule, nil
}

func parseWeekday(name string) (time.Weekday, error) {
	for day := time.Sunday; day <= time.Saturday; day++ {
		if strings.EqualFold(day.String(), name) {
			return day, nil
		}
	}
	return 0, fmt.Errorf("invalid schedule.non_working_day %q", name)
}

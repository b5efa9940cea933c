package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Database string `yaml:"database"`
		SSLMode  string `yaml:"sslMode"`
	} `yaml:"database"`
}

func main() {
	// Load configuration
	config := loadConfig()

	// Build DSN
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.Database.Host,
		config.Database.Port,
		config.Database.Username,
		config.Database.Password,
		config.Database.Database,
		config.Database.SSLMode,
	)

	// Connect DB
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Database connection test failed: %v", err)
	}

	fmt.Println("Database connected successfully")
	fmt.Printf("Database: %s\n", config.Database.Database)

	// Confirm
	fmt.Print("\nWARNING: This operation will CLEAR ALL DATA in tables [friendship, event_invite, event_host, event, user]!\n")
	fmt.Print("Type 'YES' to confirm: ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "YES" {
		fmt.Println("Operation cancelled")
		return
	}

	// Truncate in one statement so FK order does not matter
	_, err = db.Exec(`TRUNCATE TABLE friendship, event_invite, event_host, event, "user" RESTART IDENTITY CASCADE`)
	if err != nil {
		log.Fatalf("Truncate failed: %v", err)
	}

	fmt.Println("All tables cleared")
}

func loadConfig() *Config {
	config := &Config{}
	config.Database.Host = "localhost"
	config.Database.Port = 5432
	config.Database.Username = "event_user"
	config.Database.Password = "event_pass"
	config.Database.Database = "event_app"
	config.Database.SSLMode = "disable"

	data, err := os.ReadFile("config/config.yaml")
	if err != nil {
		fmt.Println("config/config.yaml not found, using defaults")
		return config
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		log.Fatalf("Failed to parse config: %v", err)
	}
	return config
}

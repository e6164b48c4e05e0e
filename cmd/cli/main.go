package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yourusername/vidfetch-go/internal/app"
	"github.com/yourusername/vidfetch-go/internal/domain"
)

var (
	serverURL   string
	noAutoStart bool
	rootCmd     = &cobra.Command{
		Use:   "vidfetch",
		Short: "vidfetch CLI - Download videos from YouTube, X, Facebook, Instagram and TikTok",
		Long:  `A command-line client for the vidfetch server: fetch available formats and download videos from the supported platforms.`,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "Server URL")
	rootCmd.PersistentFlags().BoolVar(&noAutoStart, "no-auto-start", false, "Don't auto-start server if not running")

	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(platformsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(configCmd)

	downloadCmd.Flags().StringP("platform", "p", "", "Platform (youtube, youtube_shorts, x, facebook, instagram, tiktok; detected from the URL when omitted)")
	downloadCmd.Flags().StringP("format", "f", "", "Format id for platforms with resolution choice (18, 22, 37)")
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().String("path", "", "Config file path (default: ~/.vidfetch/config.yaml)")
}

// ensureServer checks if server is running and starts it if needed (unless --no-auto-start)
func ensureServer() {
	if noAutoStart {
		return
	}
	if err := ensureServerRunning(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
}

var downloadCmd = &cobra.Command{
	Use:   "download [url]",
	Short: "Download a video",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ensureServer()

		url := args[0]
		platform, _ := cmd.Flags().GetString("platform")
		format, _ := cmd.Flags().GetString("format")

		if platform == "" {
			// Fail fast on URLs outside the supported set and show
			// what the server will detect
			detected := domain.DetectPlatform(url)
			if detected == "" {
				fmt.Fprintln(os.Stderr, "Error: could not detect platform from URL, pass --platform")
				os.Exit(1)
			}
			fmt.Printf("Detected platform: %s\n", detected.DisplayName())
		}

		payload := map[string]string{"url": url}
		if platform != "" {
			payload["platform"] = platform
		}
		if format != "" {
			payload["format_id"] = format
		}

		data, _ := json.Marshal(payload)
		resp, err := http.Post(serverURL+"/api/v1/downloads", "application/json", bytes.NewBuffer(data))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		var result domain.DownloadResult
		if err := json.Unmarshal(body, &result); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", string(body))
			os.Exit(1)
		}

		if !result.Success {
			if result.Error == "" {
				result.Error = string(body)
			}
			fmt.Fprintf(os.Stderr, "Error: %s\n", result.Error)
			os.Exit(1)
		}

		fmt.Println("Video Downloaded Successfully!")
		fmt.Printf("File: %s\n", result.FilePath)
	},
}

var infoCmd = &cobra.Command{
	Use:   "info [url]",
	Short: "List available formats for a video",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ensureServer()

		resp, err := http.Get(serverURL + "/api/v1/info?url=" + neturl.QueryEscape(args[0]))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode != http.StatusOK {
			var apiErr struct {
				Error string `json:"error"`
			}
			json.Unmarshal(body, &apiErr)
			if apiErr.Error == "" {
				apiErr.Error = string(body)
			}
			fmt.Fprintf(os.Stderr, "Error: %s\n", apiErr.Error)
			os.Exit(1)
		}

		var info struct {
			Title   string                    `json:"title"`
			Formats []domain.FormatDescriptor `json:"formats"`
		}
		json.Unmarshal(body, &info)

		if info.Title != "" {
			fmt.Printf("Title: %s\n\n", info.Title)
		}

		if len(info.Formats) == 0 {
			fmt.Println("No selectable formats found; defaulting to best available quality.")
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "FORMAT\tRESOLUTION")
		for _, f := range info.Formats {
			fmt.Fprintf(w, "%s\t%s\n", f.FormatID, f.Resolution)
		}
		w.Flush()
	},
}

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List supported platforms",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tLABEL\tFOLDER\tRESOLUTION CHOICE")
		for _, p := range domain.AllPlatforms() {
			choice := "no"
			if p.SupportsFormatChoice() {
				choice = "yes"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p, p.DisplayName(), p.Folder(), choice)
		}
		w.Flush()
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show server status",
	Run: func(cmd *cobra.Command, args []string) {
		resp, err := http.Get(serverURL + "/health")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Server is not running at %s\n", serverURL)
			os.Exit(1)
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		var health struct {
			Status    string `json:"status"`
			Version   string `json:"version"`
			Extractor string `json:"extractor"`
		}
		json.Unmarshal(body, &health)

		ready := "yes"
		readyResp, err := http.Get(serverURL + "/ready")
		if err != nil || readyResp.StatusCode != http.StatusOK {
			ready = "no"
		}
		if readyResp != nil {
			readyResp.Body.Close()
		}

		fmt.Println("Server Status:")
		fmt.Printf("  Status:    %s\n", health.Status)
		fmt.Printf("  Version:   %s\n", health.Version)
		fmt.Printf("  Extractor: %s\n", health.Extractor)
		fmt.Printf("  Ready:     %s\n", ready)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default values",
	Run: func(cmd *cobra.Command, args []string) {
		path, _ := cmd.Flags().GetString("path")
		if path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			path = filepath.Join(home, ".vidfetch", "config.yaml")
		}

		if _, err := os.Stat(path); err == nil {
			fmt.Fprintf(os.Stderr, "Config file already exists: %s\n", path)
			os.Exit(1)
		}

		if err := app.SaveConfig(domain.DefaultConfig(), path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Config written to %s\n", path)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

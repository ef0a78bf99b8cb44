package cmd

import (
	"fmt"
	"io"
	"mime"
	"os"
	"path"
	"path/filepath"

	"storage-gateway/feature/file"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	uploadKey          string
	uploadContentType  string
	downloadOut        string
	presignContentType string
	presignMinutes     float64
)

var fileCmd = &cobra.Command{
	Use:   "file",
	Short: "Manage files inside buckets",
}

var fileListCmd = &cobra.Command{
	Use:   "list <bucket>",
	Short: "List every key of a bucket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}
		defer env.logger.Sync()

		keys, err := env.files.ListFiles(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		for _, k := range keys {
			fmt.Fprintln(cmd.OutOrStdout(), k)
		}
		return nil
	},
}

var fileUploadCmd = &cobra.Command{
	Use:   "upload <bucket> <path>",
	Short: "Upload a local file, creating the bucket when missing",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}
		defer env.logger.Sync()

		f, err := os.Open(args[1])
		if err != nil {
			return err
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return err
		}

		key := uploadKey
		if key == "" {
			key = filepath.Base(args[1])
		}
		contentType := uploadContentType
		if contentType == "" {
			contentType = mime.TypeByExtension(filepath.Ext(args[1]))
		}

		result, err := env.files.UploadFile(cmd.Context(), args[0], key, f, info.Size(), contentType)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.URL)
		return nil
	},
}

var fileDownloadCmd = &cobra.Command{
	Use:   "download <bucket> <key>",
	Short: "Download a file; --out - writes to stdout",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}
		defer env.logger.Sync()

		dl, err := env.files.GetFile(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		defer dl.Body.Close()

		if downloadOut == "-" {
			_, err = io.Copy(cmd.OutOrStdout(), dl.Body)
			return err
		}

		out := downloadOut
		if out == "" {
			out = path.Base(args[1])
		}
		dst, err := os.Create(out)
		if err != nil {
			return err
		}
		n, err := io.Copy(dst, dl.Body)
		if cerr := dst.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}

		env.logger.Debug("File downloaded", zap.String("path", out), zap.Int64("bytes", n))
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d bytes to %s\n", n, out)
		return nil
	},
}

var fileDeleteCmd = &cobra.Command{
	Use:   "delete <bucket> <key>",
	Short: "Delete a file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}
		defer env.logger.Sync()

		if _, err := env.files.DeleteFile(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "File '%s' deleted from bucket '%s'\n", args[1], args[0])
		return nil
	},
}

var filePresignCmd = &cobra.Command{
	Use:   "presign <bucket> <key>",
	Short: "Issue a presigned upload URL",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}
		defer env.logger.Sync()

		u, err := env.issuer.Issue(cmd.Context(), file.PresignedURLRequest{
			Key:             args[1],
			BucketName:      args[0],
			ContentType:     presignContentType,
			DurationMinutes: presignMinutes,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), u)
		return nil
	},
}

func init() {
	fileUploadCmd.Flags().StringVar(&uploadKey, "key", "", "object key (defaults to the file name)")
	fileUploadCmd.Flags().StringVar(&uploadContentType, "content-type", "", "content type (defaults to one guessed from the extension)")
	fileDownloadCmd.Flags().StringVarP(&downloadOut, "out", "o", "", "output path (defaults to the key's base name)")
	filePresignCmd.Flags().StringVar(&presignContentType, "content-type", file.DefaultContentType, "content type the upload must send")
	filePresignCmd.Flags().Float64Var(&presignMinutes, "minutes", file.DefaultPresignDuration.Minutes(), "validity in minutes")

	fileCmd.AddCommand(fileListCmd, fileUploadCmd, fileDownloadCmd, fileDeleteCmd, filePresignCmd)
	RootCmd.AddCommand(fileCmd)
}

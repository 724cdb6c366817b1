package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"cortesec-admin/internal/location"
	"cortesec-admin/internal/shared/apperror"
	"cortesec-admin/internal/shared/backend"
	"cortesec-admin/internal/shared/contextutil"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

type options struct {
	backendURL string
	token      string
	timeout    time.Duration
}

// bulk builds the location bulk service against the backend, acting with
// the given service token.
func (o *options) bulk() (location.BulkService, context.Context, error) {
	client, err := backend.NewClient(o.backendURL, o.timeout, zap.NewNop())
	if err != nil {
		return nil, nil, err
	}
	ctx := context.Background()
	if o.token != "" {
		ctx = contextutil.WithAccessToken(ctx, o.token)
	}
	return location.NewBulkService(location.NewRepository(client), nil, zap.NewNop()), ctx, nil
}

func main() {
	_ = godotenv.Load()

	opts := &options{
		backendURL: envOr("BACKEND_URL", "http://localhost:8000"),
		token:      envOr("BACKEND_SERVICE_TOKEN", ""),
		timeout:    60 * time.Second,
	}

	root := &cobra.Command{
		Use:           "locations",
		Short:         "Plantilla, validación, importación y exportación de departamentos y municipios",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.backendURL, "backend-url", opts.backendURL, "URL base del backend (env BACKEND_URL)")
	root.PersistentFlags().StringVar(&opts.token, "token", opts.token, "Token de servicio (env BACKEND_SERVICE_TOKEN)")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", opts.timeout, "Timeout de cada llamada al backend")

	root.AddCommand(
		templateCmd(opts),
		validateCmd(opts),
		importCmd(opts),
		exportCmd(opts),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, describeError(err))
		os.Exit(1)
	}
}

func templateCmd(opts *options) *cobra.Command {
	var out string
	var offline bool

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Genera la plantilla Excel de ubicaciones",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				content []byte
				err     error
			)
			if offline {
				content, err = location.BuildTemplate(nil)
			} else {
				svc, ctx, berr := opts.bulk()
				if berr != nil {
					return berr
				}
				content, err = svc.Template(ctx)
			}
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, content, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "plantilla escrita en %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", location.TemplateName, "Archivo de salida")
	cmd.Flags().BoolVar(&offline, "offline", false, "No consultar departamentos existentes")
	return cmd
}

func validateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <archivo.xlsx>",
		Short: "Valida un archivo antes de importarlo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readWorkbook(args[0])
			if err != nil {
				return err
			}
			svc, ctx, err := opts.bulk()
			if err != nil {
				return err
			}
			report, err := svc.Validate(ctx, content)
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), report)
			if !report.Valido {
				return errors.New("el archivo tiene errores")
			}
			return nil
		},
	}
}

func importCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "import <archivo.xlsx>",
		Short: "Valida e importa un archivo de ubicaciones",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readWorkbook(args[0])
			if err != nil {
				return err
			}
			svc, ctx, err := opts.bulk()
			if err != nil {
				return err
			}
			res, err := svc.Import(ctx, args[0], content)
			if err != nil {
				var appErr *apperror.AppError
				if errors.As(err, &appErr) {
					if report, ok := appErr.Details.(location.ValidationReport); ok {
						printReport(cmd.OutOrStdout(), report)
					}
				}
				return err
			}
			w := cmd.OutOrStdout()
			if res.Mensaje != "" {
				fmt.Fprintln(w, res.Mensaje)
			}
			fmt.Fprintf(w, "departamentos=%d municipios=%d creados=%d actualizados=%d\n",
				res.Departamentos, res.Municipios, res.Creados, res.Actualizados)
			for _, e := range res.Errores {
				fmt.Fprintf(w, "  - %s\n", e)
			}
			return nil
		},
	}
}

func exportCmd(opts *options) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Descarga las ubicaciones actuales en Excel",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, ctx, err := opts.bulk()
			if err != nil {
				return err
			}
			f, err := svc.Export(ctx)
			if err != nil {
				return err
			}
			if out == "" {
				out = f.Name
			}
			if err := os.WriteFile(out, f.Content, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exportación escrita en %s (%d bytes)\n", out, len(f.Content))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Archivo de salida (por defecto el nombre enviado por el backend)")
	return cmd
}

func readWorkbook(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > location.MaxUploadSize {
		return nil, fmt.Errorf("%s supera el máximo de %d MB", path, location.MaxUploadSize>>20)
	}
	return os.ReadFile(path)
}

func printReport(w io.Writer, r location.ValidationReport) {
	status := "válido"
	if !r.Valido {
		status = "con errores"
	}
	fmt.Fprintf(w, "archivo %s: departamentos=%d municipios=%d\n", status, r.Departamentos, r.Municipios)
	for _, issue := range r.Errores {
		fmt.Fprintf(w, "  %s fila %d", issue.Hoja, issue.Fila)
		if issue.Columna != "" {
			fmt.Fprintf(w, " [%s]", issue.Columna)
		}
		fmt.Fprintf(w, ": %s\n", issue.Mensaje)
	}
	if r.Truncado {
		fmt.Fprintln(w, "  (lista de errores truncada)")
	}
}

// describeError renders backend field errors on one line.
func describeError(err error) string {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		return err.Error()
	}
	msg := appErr.Code + ": " + appErr.Message
	if details, ok := appErr.Details.(map[string]any); ok {
		if fields, ok := details["fields"].(map[string][]string); ok && len(fields) > 0 {
			msg += " (" + backend.FieldSummary(fields) + ")"
		}
	}
	return msg
}

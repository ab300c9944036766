// Package resolver decides, from the three optional path inputs, which file
// to copy where, and performs the copy.
//
// The rules are evaluated in a fixed order and the first match wins.
// Reordering them changes which error a malformed input reports.
//
// Overwrite policy is asymmetric. When both paths come from COPIE_FROM and
// COPIE_TO, an existing destination is refused. When one end is the FILE
// argument, the other side is replaced unconditionally.
package resolver

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mmr-tortoise/copie/internal/config"
	"github.com/mmr-tortoise/copie/internal/fileops"
	"github.com/mmr-tortoise/copie/internal/model"
)

// Resolver validates an InputPaths and runs the resulting copy.
type Resolver struct {
	// fs performs every probe and the copy itself.
	fs fileops.FS

	// log receives a debug trace of the decision. Disabled by default.
	log zerolog.Logger
}

// New creates a Resolver over the given filesystem.
func New(fs fileops.FS, log zerolog.Logger) *Resolver {
	return &Resolver{fs: fs, log: log}
}

// Run resolves in and performs exactly one copy on success. On any
// validation failure the filesystem is left untouched.
func (r *Resolver) Run(in model.InputPaths) (model.Operation, error) {
	op, err := r.Resolve(in)
	if err != nil {
		return model.Operation{}, err
	}

	r.log.Debug().
		Str("source", op.Source).
		Str("destination", op.Destination).
		Bool("overwrite", op.Overwrite).
		Msg("copying")

	if err := r.fs.Copy(op.Source, op.Destination); err != nil {
		return model.Operation{}, model.WrapCLIError(model.KindCopyFailed,
			fmt.Sprintf("failed to copy from '%s' to '%s'", op.Source, op.Destination), err)
	}
	return op, nil
}

// Resolve applies the rule table to in without copying anything.
func (r *Resolver) Resolve(in model.InputPaths) (model.Operation, error) {
	r.log.Debug().
		Str("argument", in.Argument).
		Str("from", in.From).
		Str("to", in.To).
		Msg("resolving inputs")

	// Rule 1: with all three inputs the direction cannot be determined.
	if in.HasFrom() && in.HasTo() && in.HasArgument() {
		return model.Operation{}, model.NewCLIError(model.KindAmbiguousInput,
			fmt.Sprintf("%s, %s and a file argument were all specified, copie cannot determine which file to copy from or to",
				config.FromVar, config.ToVar))
	}

	// Rule 2: COPIE_FROM must be an existing file.
	if in.HasFrom() {
		if err := r.checkReadable(in.From, "in "+config.FromVar); err != nil {
			return model.Operation{}, err
		}
	}

	// Rule 3: COPIE_TO must not be a directory. Existence is checked later,
	// and only for the env-to-env branch.
	if in.HasTo() && r.fs.IsDir(in.To) {
		return model.Operation{}, isDirectoryError(in.To, "in "+config.ToVar)
	}

	// Rule 4: env-to-env copy never replaces an existing destination.
	if in.HasFrom() && in.HasTo() {
		if r.fs.IsDir(in.From) {
			return model.Operation{}, isDirectoryError(in.From, "in "+config.FromVar)
		}
		if r.fs.Exists(in.To) {
			return model.Operation{}, model.NewCLIError(model.KindDestinationExists,
				fmt.Sprintf("path '%s' specified in %s already exists, copie does not replace files",
					in.To, config.ToVar))
		}
		r.log.Debug().Msg("matched env-to-env copy")
		return model.Operation{Source: in.From, Destination: in.To}, nil
	}

	// Rule 5: the FILE argument must be an existing file, whichever role it plays.
	if in.HasArgument() {
		if err := r.checkReadable(in.Argument, "in the command line"); err != nil {
			return model.Operation{}, err
		}
	}

	// Rule 6: COPIE_FROM replaces the argument file.
	if in.HasFrom() && in.HasArgument() {
		r.log.Debug().Msg("matched copy into argument")
		return model.Operation{Source: in.From, Destination: in.Argument, Overwrite: true}, nil
	}

	// Rule 7: the argument file replaces COPIE_TO.
	if in.HasTo() && in.HasArgument() {
		r.log.Debug().Msg("matched copy from argument")
		return model.Operation{Source: in.Argument, Destination: in.To, Overwrite: true}, nil
	}

	// Rule 8.
	if !in.HasArgument() {
		return model.Operation{}, model.NewCLIError(model.KindMissingPath,
			"missing file to read or replace")
	}

	// Rule 9: a FILE argument alone has nothing to pair with.
	if !in.HasFrom() || !in.HasTo() {
		return model.Operation{}, model.NewCLIError(model.KindMissingPath,
			fmt.Sprintf("missing %s or %s", config.FromVar, config.ToVar))
	}

	// Rule 10: rule 1 excludes the only state left; kept as a safety net.
	return model.Operation{}, model.NewCLIError(model.KindUnknown, "unknown error")
}

// checkReadable verifies that path exists and is not a directory.
// where describes the origin of the path for the error message.
func (r *Resolver) checkReadable(path, where string) error {
	if !r.fs.Exists(path) {
		return model.NewCLIError(model.KindNotFound,
			fmt.Sprintf("path '%s' specified %s does not exist", path, where))
	}
	if r.fs.IsDir(path) {
		return isDirectoryError(path, where)
	}
	return nil
}

func isDirectoryError(path, where string) error {
	return model.NewCLIError(model.KindIsDirectory,
		fmt.Sprintf("path '%s' specified %s is a directory, copie does not copy directories", path, where))
}

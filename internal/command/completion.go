// Copyright (c) 2025 The ai-pathfinder Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/mitom/ai-pathfinder/internal/meta"
)

const bashCompletionScript = `# bash completion for cavegen
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_cavegen()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "generate gen inspect path completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}

    case "$cmd" in
        generate|gen)
            local opts="--count -n --width -W --height -H --connectivity -c --radius -r --seed --max-attempts --out -o --cache-ttl --quiet -q --s3-bucket --s3-key --s3-region --s3-retries --aws-profile --tldr"
            ;;
        inspect)
            local opts="--caverns --color -c --filter -f --output -o --query -Q --sort -s --titles -t --tldr"
            ;;
        path)
            local opts="--start --goal --weight --verbose --visualize --step --tldr"
            ;;
        completion)
            local opts="bash zsh"
            COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
            return 0
            ;;
        *)
            local opts=""
            ;;
    esac

    if [[ "$cmd" == "inspect" && ( "$prev" == "--output" || "$prev" == "-o" ) ]]; then
        COMPREPLY=( $(compgen -W "text json raw yaml" -- "$cur") )
        return 0
    fi

    if [[ "$prev" == "--out" || "$prev" == "-o" || "$prev" == "--visualize" ]]; then
        COMPREPLY=( $(compgen -f -- "$cur") )
        return 0
    fi

    if [[ "$cur" == -* || "$cmd" == generate || "$cmd" == gen ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    # Otherwise, we're on the cave file positional
    COMPREPLY=( $(compgen -f -X '!*.cav' -- "$cur") $(compgen -o dirnames -- "$cur") )
    return 0
}

complete -F _cavegen cavegen
`

const zshCompletionScript = `#compdef cavegen

_cavegen() {
  local -a cmds
  cmds=(
    'generate:generate a random cave'
    'gen:generate a random cave'
    'inspect:summarize a cave file'
    'path:search a route from the first to the last cavern'
    'completion:generate shell completion script'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'cavegen commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    generate|gen)
      _arguments -C \
        '(-n --count)'{-n,--count}'[number of caverns]:count' \
        '(-W --width)'{-W,--width}'[width of the cave]:width' \
        '(-H --height)'{-H,--height}'[height of the cave]:height' \
        '(-c --connectivity)'{-c,--connectivity}'[connection chance in percent]:percent' \
        '(-r --radius)'{-r,--radius}'[maximum passage length]:radius' \
        '--seed[random seed]:seed' \
        '--max-attempts[placement draws per cavern]:attempts' \
        '(-o --out)'{-o,--out}'[output file]:file:_files' \
        '--cache-ttl[hours to keep cached caves]:hours' \
        '(-q --quiet)'{-q,--quiet}'[no summary line]' \
        '--s3-bucket[publish to bucket]:bucket' \
        '--s3-key[object key or prefix]:key' \
        '--s3-region[bucket region]:region' \
        '--s3-retries[attempts per S3 request]:attempts' \
        '--aws-profile[shared config profile]:profile' \
        '--tldr[show tldr page]'
      ;;
    inspect)
      _arguments -C \
        '--caverns[one row per cavern]' \
        '(-c --color)'{-c,--color}'[enable colored text]' \
        '(-f --filter)'{-f,--filter}'[filters to apply]:filters' \
        '(-o --output)'{-o,--output}'[output format]:format:(text json raw yaml)' \
        '(-Q --query)'{-Q,--query}'[gjson path]:query' \
        '(-s --sort)'{-s,--sort}'[sort keys]:keys' \
        '(-t --titles)'{-t,--titles}'[show titles]' \
        '--tldr[show tldr page]' \
        '::FILE:_files -g "*.cav"'
      ;;
    path)
      _arguments -C \
        '--start[starting cavern]:id' \
        '--goal[goal cavern]:id' \
        '--weight[heuristic weight]:weight' \
        '--verbose[print every iteration]' \
        '--visualize[renderer script]:file:_files' \
        '--step[interactive stepper]' \
        '--tldr[show tldr page]' \
        '::FILE:_files -g "*.cav"'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _cavegen cavegen
`

func CompletionCommandAction(ctx context.Context, cmd *cli.Command) error {
	w := cmd.Root().Writer

	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		if strings.HasSuffix(sh, "zsh") {
			fmt.Fprint(w, zshCompletionScript)
		} else if strings.HasSuffix(sh, "bash") {
			fmt.Fprint(w, bashCompletionScript)
		} else {
			fmt.Fprintln(os.Stderr, "usage: cavegen completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func CompletionCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "cavegen completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: CompletionCommandAction,
	}
}

package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/odelab/internal/ad"
	"github.com/san-kum/odelab/internal/analysis"
	"github.com/san-kum/odelab/internal/config"
	"github.com/san-kum/odelab/internal/export"
	"github.com/san-kum/odelab/internal/newton"
	"github.com/san-kum/odelab/internal/num"
	"github.com/san-kum/odelab/internal/ode"
	"github.com/san-kum/odelab/internal/optim"
	"github.com/san-kum/odelab/internal/problems"
	"github.com/san-kum/odelab/internal/storage"
	"github.com/san-kum/odelab/internal/tui"
	"github.com/san-kum/odelab/internal/viz"
)

var (
	dataDir    string
	method     string
	t0, t1, h  float64
	initState  []float64
	params     []string
	tol        float64
	maxIter    int
	configFile string
	preset     string
	save       bool

	// plot/phase
	plotWidth  int
	plotHeight int
	xAxis      int
	yAxis      int

	// analyze
	levels       int
	perturbation float64

	// fit
	fitParam  string
	fitGrid   []float64
	fitTarget float64

	// deriv/root
	order    int
	atX      float64
	x0, x1   float64
	strategy string
	lo, hi   float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "odelab",
		Short: "fixed step ODE integration lab with exact derivatives",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".odelab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [problem]",
		Short: "integrate a problem",
		Args:  cobra.ExactArgs(1),
		RunE:  runProblem,
	}
	addRunFlags(runCmd)
	runCmd.Flags().BoolVar(&save, "save", false, "persist the run")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&plotWidth, "width", 80, "chart width")
	plotCmd.Flags().IntVar(&plotHeight, "height", 10, "chart height")

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "phase space plot of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePlot,
	}
	phaseCmd.Flags().IntVar(&xAxis, "x-axis", 0, "state index for x")
	phaseCmd.Flags().IntVar(&yAxis, "y-axis", 1, "state index for y")
	phaseCmd.Flags().IntVar(&plotWidth, "width", 60, "canvas width")
	phaseCmd.Flags().IntVar(&plotHeight, "height", 20, "canvas height")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a trace plot as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&xAxis, "x-axis", -1, "phase plot x component (-1 for time series)")
	exportSVGCmd.Flags().IntVar(&yAxis, "y-axis", 0, "component to plot")
	exportSVGCmd.Flags().IntVar(&plotWidth, "width", 800, "image width")
	exportSVGCmd.Flags().IntVar(&plotHeight, "height", 400, "image height")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [problem]",
		Short: "stability probe, Lyapunov estimate and convergence study",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeProblem,
	}
	addRunFlags(analyzeCmd)
	analyzeCmd.Flags().IntVar(&levels, "levels", 4, "step halving levels")
	analyzeCmd.Flags().Float64Var(&perturbation, "perturbation", 1e-8, "lyapunov seed separation")

	liveCmd := &cobra.Command{
		Use:   "live [problem]",
		Short: "integrate with a live terminal view",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addRunFlags(liveCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets [problem]",
		Short: "list presets for a problem",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	fitCmd := &cobra.Command{
		Use:   "fit [problem]",
		Short: "grid search one parameter against a target final value",
		Args:  cobra.ExactArgs(1),
		RunE:  fitProblem,
	}
	addRunFlags(fitCmd)
	fitCmd.Flags().StringVar(&fitParam, "fit-param", "", "parameter to sweep")
	fitCmd.Flags().Float64SliceVar(&fitGrid, "grid", nil, "candidate values, comma separated")
	fitCmd.Flags().Float64Var(&fitTarget, "target", 0, "desired final value of component 0")

	derivCmd := &cobra.Command{
		Use:   "deriv [fn]",
		Short: "exact higher derivatives of a built-in function",
		Long:  "Functions: " + strings.Join(demoFuncNames(), ", "),
		Args:  cobra.ExactArgs(1),
		RunE:  derivFn,
	}
	derivCmd.Flags().Float64Var(&atX, "at", 1.0, "evaluation point")
	derivCmd.Flags().IntVar(&order, "order", 4, "highest derivative order")

	rootFnCmd := &cobra.Command{
		Use:   "root [fn]",
		Short: "find a root of a built-in function",
		Long:  "Functions: " + strings.Join(demoFuncNames(), ", "),
		Args:  cobra.ExactArgs(1),
		RunE:  rootFn,
	}
	rootFnCmd.Flags().Float64Var(&x0, "x0", 1.0, "initial guess")
	rootFnCmd.Flags().Float64Var(&x1, "x1", 2.0, "second guess (secant)")
	rootFnCmd.Flags().StringVar(&strategy, "strategy", "newton", "newton, secant or bisect")
	rootFnCmd.Flags().Float64Var(&lo, "lo", 0, "bracket low (bisect)")
	rootFnCmd.Flags().Float64Var(&hi, "hi", 2, "bracket high (bisect)")
	rootFnCmd.Flags().Float64Var(&tol, "tol", 1e-10, "residual tolerance")
	rootFnCmd.Flags().IntVar(&maxIter, "max-iter", 50, "iteration cap")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, phaseCmd, exportCmd,
		exportSVGCmd, analyzeCmd, liveCmd, presetsCmd, fitCmd, derivCmd, rootFnCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&method, "method", "rk4", "integration method: "+strings.Join(ode.MethodNames(), ", "))
	cmd.Flags().Float64Var(&t0, "t0", 0, "start time")
	cmd.Flags().Float64Var(&t1, "t1", config.DefaultT1, "end time")
	cmd.Flags().Float64Var(&h, "h", config.DefaultH, "step size")
	cmd.Flags().Float64SliceVar(&initState, "state", nil, "initial state, comma separated")
	cmd.Flags().StringArrayVar(&params, "param", nil, "system parameter, name=value")
	cmd.Flags().Float64Var(&tol, "tol", config.DefaultTol, "newton residual tolerance")
	cmd.Flags().IntVar(&maxIter, "max-iter", config.DefaultMaxIter, "newton iteration cap")
	cmd.Flags().StringVar(&configFile, "config", "", "config file (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "named preset")
}

// buildConfig layers preset, config file and explicit flags, in that
// order of increasing precedence.
func buildConfig(cmd *cobra.Command, problem string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Problem = problem

	if preset != "" {
		p := config.GetPreset(problem, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q (available: %v)", preset, config.ListPresets(problem))
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		loaded.Problem = problem
		cfg = loaded
	}

	if cmd.Flags().Changed("method") {
		cfg.Method = method
	}
	if cmd.Flags().Changed("t0") {
		cfg.T0 = t0
	}
	if cmd.Flags().Changed("t1") {
		cfg.T1 = t1
	}
	if cmd.Flags().Changed("h") {
		cfg.H = h
	}
	if cmd.Flags().Changed("state") {
		cfg.InitState = initState
	}
	if cmd.Flags().Changed("tol") {
		cfg.Tol = tol
	}
	if cmd.Flags().Changed("max-iter") {
		cfg.MaxIter = maxIter
	}
	for _, kv := range params {
		name, val, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("bad --param %q, want name=value", kv)
		}
		v, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, fmt.Errorf("bad --param %q: %w", kv, err)
		}
		if cfg.Params == nil {
			cfg.Params = map[string]float64{}
		}
		cfg.Params[name] = v
	}
	return cfg, nil
}

func runProblem(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}
	p, m, opt, err := cfg.Build()
	if err != nil {
		return err
	}

	fmt.Printf("integrating %s with %s, h=%g over [%g, %g]\n", cfg.Problem, m, p.H, p.T0, p.T1)
	start := time.Now()
	tr, runErr := ode.Integrate(p, m, opt)
	elapsed := time.Since(start)

	if runErr != nil {
		fmt.Printf("aborted: %v\n", runErr)
	}
	fmt.Printf("completed %d steps in %v\n", tr.Len()-1, elapsed)
	tFinal, yFinal := tr.Last()
	fmt.Printf("final state at t=%g: %v\n", tFinal, yFinal)

	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(cfg.Problem, m, p.T0, p.T1, p.H, tr, runErr != nil)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPROBLEM\tMETHOD\tTIME\tSPAN\tH\tSTEPS")
	for _, run := range runs {
		span := fmt.Sprintf("[%g, %g]", run.T0, run.T1)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%g\t%d\n",
			run.ID, run.Problem, run.Method,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			span, run.H, run.Steps)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	tr, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("run: %s  problem: %s  method: %s  samples: %d\n\n",
		meta.ID, meta.Problem, meta.Method, tr.Len())
	fmt.Print(viz.PlotTrace(tr, plotWidth, plotHeight, 6))
	return nil
}

func phasePlot(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	tr, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}
	fmt.Print(viz.PhasePlot(tr, xAxis, yAxis, plotWidth, plotHeight))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	tr, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}
	var svg string
	if xAxis >= 0 {
		svg = export.PhaseSVG(tr, xAxis, yAxis, plotWidth, plotHeight, "#00ff88")
	} else {
		svg = export.TimeSeriesSVG(tr, yAxis, plotWidth, plotHeight, "#00ff88")
	}
	if svg == "" {
		return fmt.Errorf("nothing to plot for run %s", args[0])
	}
	fmt.Println(svg)
	return nil
}

func analyzeProblem(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}
	p, m, opt, err := cfg.Build()
	if err != nil {
		return err
	}

	rep, err := analysis.Probe(p, m, opt)
	if err != nil {
		return fmt.Errorf("probe: %w", err)
	}
	fmt.Printf("stability of %s under %s, h=%g:\n", cfg.Problem, m, p.H)
	fmt.Printf("  bounded: %v  blew up: %v\n", rep.Bounded, rep.Blew)
	fmt.Printf("  max norm: %g  sign changes: %d\n", rep.MaxNorm, rep.SignChanges)
	fmt.Printf("  final state: %v\n\n", rep.Final)

	if lam, err := analysis.Lyapunov(p, m, opt, perturbation); err == nil {
		verdict := "contracting"
		if lam > 0.01 {
			verdict = "chaotic"
		} else if lam > -0.01 {
			verdict = "neutral"
		}
		fmt.Printf("largest lyapunov exponent: %.4f (%s)\n\n", lam, verdict)
	}

	exact := exactSolution(p)
	if exact == nil {
		fmt.Println("no closed form solution known, skipping convergence study")
		return nil
	}
	pts, err := analysis.ObservedOrder(p, m, opt, exact, levels)
	if err != nil {
		return fmt.Errorf("convergence study: %w", err)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "H\tERROR\tOBSERVED ORDER")
	for _, pt := range pts {
		orderStr := "-"
		if !math.IsNaN(pt.Order) {
			orderStr = fmt.Sprintf("%.2f", pt.Order)
		}
		fmt.Fprintf(w, "%g\t%.3e\t%s\n", pt.H, pt.Error, orderStr)
	}
	return w.Flush()
}

// exactSolution returns the closed form trajectory for the systems
// that have one, nil otherwise. The trajectory honors the problem's
// actual initial state.
func exactSolution(p ode.Problem) func(t float64) []float64 {
	switch s := p.System.(type) {
	case *problems.Decay:
		y0 := p.Y0[0]
		return func(t float64) []float64 {
			return []float64{y0 * math.Exp(-s.Lambda*(t-p.T0))}
		}
	case *problems.Harmonic:
		a, b := p.Y0[0], p.Y0[1]
		return func(t float64) []float64 {
			w := s.Omega
			tt := t - p.T0
			return []float64{
				a*math.Cos(w*tt) + b/w*math.Sin(w*tt),
				-a*w*math.Sin(w*tt) + b*math.Cos(w*tt),
			}
		}
	case *problems.Logistic:
		y0 := p.Y0[0]
		return func(t float64) []float64 {
			return []float64{s.K / (1 + (s.K-y0)/y0*math.Exp(-s.R*(t-p.T0)))}
		}
	}
	return nil
}

func fitProblem(cmd *cobra.Command, args []string) error {
	if fitParam == "" || len(fitGrid) == 0 {
		return fmt.Errorf("need --fit-param and --grid")
	}
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	build := func(params map[string]float64) (ode.Problem, ode.Method, ode.Options, error) {
		c := *cfg
		c.Params = make(map[string]float64, len(cfg.Params)+1)
		for k, v := range cfg.Params {
			c.Params[k] = v
		}
		for k, v := range params {
			c.Params[k] = v
		}
		return c.Build()
	}
	objective := func(tr *ode.Trace) float64 {
		_, last := tr.Last()
		return math.Abs(last[0] - fitTarget)
	}

	gs := optim.NewGridSearch([]string{fitParam}, [][]float64{fitGrid})
	bestParams, bestScore, err := gs.Search(build, objective)
	if err != nil {
		return err
	}
	fmt.Printf("best %s = %g  |final - target| = %.3e\n", fitParam, bestParams[fitParam], bestScore)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}
	p, m, opt, err := cfg.Build()
	if err != nil {
		return err
	}
	run, err := ode.NewRun(p, m, opt)
	if err != nil {
		return err
	}
	return tui.RunLive(cfg.Problem, m, run)
}

func listPresets(cmd *cobra.Command, args []string) error {
	names := problems.Names()
	if len(args) == 1 {
		names = []string{args[0]}
	}
	for _, problem := range names {
		presets := config.ListPresets(problem)
		if len(presets) == 0 {
			continue
		}
		fmt.Printf("%s:\n", problem)
		for _, p := range presets {
			fmt.Printf("  %s\n", p)
		}
	}
	return nil
}

var demoFuncs = map[string]func(num.Real) num.Real{
	"sin":  func(x num.Real) num.Real { return x.Sin() },
	"cos":  func(x num.Real) num.Real { return x.Cos() },
	"exp":  func(x num.Real) num.Real { return x.Exp() },
	"log":  func(x num.Real) num.Real { return x.Log() },
	"sqrt": func(x num.Real) num.Real { return x.Sqrt() },
	"expm1": func(x num.Real) num.Real {
		return x.Exp().Sub(x.Lift(1))
	},
	"sigmoid": func(x num.Real) num.Real {
		one := x.Lift(1)
		return one.Div(one.Add(x.Neg().Exp()))
	},
	"x2-2": func(x num.Real) num.Real {
		return x.Mul(x).Sub(x.Lift(2))
	},
}

func demoFuncNames() []string {
	names := make([]string, 0, len(demoFuncs))
	for n := range demoFuncs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func derivFn(cmd *cobra.Command, args []string) error {
	f, ok := demoFuncs[args[0]]
	if !ok {
		return fmt.Errorf("unknown function %q (available: %v)", args[0], demoFuncNames())
	}
	n, err := ad.Derivative(f, atX, order)
	if err != nil {
		return err
	}
	fmt.Printf("%s at x=%g:\n", args[0], atX)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ORDER\tDERIVATIVE\tTAYLOR COEFF")
	for k := 0; k <= order; k++ {
		fmt.Fprintf(w, "%d\t%.12g\t%.12g\n", k, n.Deriv(k), n.Coeff(k))
	}
	return w.Flush()
}

func rootFn(cmd *cobra.Command, args []string) error {
	f, ok := demoFuncs[args[0]]
	if !ok {
		return fmt.Errorf("unknown function %q (available: %v)", args[0], demoFuncNames())
	}
	opt := newton.Options{Tol: tol, MaxIter: maxIter}
	sf := func(x float64) float64 { return f(num.Scalar(x)).Value() }

	var (
		root  float64
		stats newton.Stats
		err   error
	)
	switch strategy {
	case "newton":
		root, stats, err = newton.FindRoot(f, x0, opt)
	case "secant":
		root, stats, err = newton.FindRootSecant(sf, x0, x1, opt)
	case "bisect":
		root, stats, err = newton.FindRootBisect(sf, lo, hi, opt)
	default:
		return fmt.Errorf("unknown strategy %q", strategy)
	}
	if err != nil {
		return err
	}
	fmt.Printf("root of %s: %.15g\n", args[0], root)
	fmt.Printf("iterations: %d  residual: %.3e\n", stats.Iterations, stats.Residual)
	return nil
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON or YAML file
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/go-playground/validator/v10"
	"github.com/gopnm/gopnm/mdl/capillary"
	"github.com/gopnm/gopnm/mdl/fluid"
	"github.com/gopnm/gopnm/network"
	"github.com/gopnm/gopnm/perc"
	"gopkg.in/yaml.v3"
)

// validate checks struct tags of input data
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Data holds global data for simulations
type Data struct {
	Desc     string `json:"desc"     yaml:"desc"`                                         // description of simulation
	DirOut   string `json:"dirout"   yaml:"dirout"`                                       // directory for output; e.g. /tmp/gopnm
	Encoder  string `json:"encoder"  yaml:"encoder"  validate:"oneof=gob json"`           // encoder name; e.g. "gob" "json"
	Snappy   bool   `json:"snappy"   yaml:"snappy"`                                       // compress result files
	Nworkers int    `json:"nworkers" yaml:"nworkers" validate:"gte=0"`                    // number of goroutines computing entry pressures; 0 means number of CPUs
	Verbose  bool   `json:"verbose"  yaml:"verbose"`                                      // show messages
	Table    bool   `json:"table"    yaml:"table"`                                        // also write intrusion curve as a text table
	Fit      string `json:"fit"      yaml:"fit"      validate:"omitempty,oneof=bc vg curve"` // retention model built from the intrusion curve; "" means none
}

// NetworkData holds data for building the pore network
type NetworkData struct {
	Type    string           `json:"type"    yaml:"type"    validate:"oneof=cubic file explicit"`  // "cubic", "file" or "explicit"
	Shape   []int            `json:"shape"   yaml:"shape"   validate:"omitempty,len=3,dive,gte=1"` // cubic: number of pores along x, y and z
	Spacing float64          `json:"spacing" yaml:"spacing" validate:"gte=0"`                      // cubic: lattice spacing
	File    string           `json:"file"    yaml:"file"`                                          // file: path of network data (.json, .yaml or .yml)
	AbsPath bool             `json:"abspath" yaml:"abspath"`                                       // file: path is absolute; otherwise relative to the .sim file
	Pores   []network.Pore   `json:"pores"   yaml:"pores"`                                         // explicit: pores
	Throats []network.Throat `json:"throats" yaml:"throats"`                                       // explicit: throats
	Labels  map[string][]int `json:"labels"  yaml:"labels"`                                        // explicit: named pore sets
	Inlets  []string         `json:"inlets"  yaml:"inlets"`                                        // labels of inlet pores
	Outlets []string         `json:"outlets" yaml:"outlets"`                                       // labels of outlet pores
}

// ModelData holds the name and parameters of a model
type ModelData struct {
	Name string     `json:"name" yaml:"name"` // name of model; e.g. "stickball", "mercury"
	Prms dbf.Params `json:"prms" yaml:"prms"` // parameters; empty means example parameters where available
}

// CapillaryData holds data for the entry-pressure model
type CapillaryData struct {
	Model string     `json:"model" yaml:"model" validate:"required"` // name of model; e.g. "purcell", "washburn"
	Prms  dbf.Params `json:"prms"  yaml:"prms"`                      // parameters
	Touch bool       `json:"touch" yaml:"touch"`                     // limit entry pressures by meniscus contact with the opposite solid
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data        Data          `json:"data"        yaml:"data"`        // global data
	NetData     NetworkData   `json:"network"     yaml:"network"`     // network
	Geometry    ModelData     `json:"geometry"    yaml:"geometry"`    // geometry provider; empty name means sizes are given
	Phase       ModelData     `json:"phase"       yaml:"phase"`       // invading fluid
	Capillary   CapillaryData `json:"capillary"   yaml:"capillary"`   // entry-pressure model
	Percolation perc.Settings `json:"percolation" yaml:"percolation"` // invasion sweep

	// derived
	Dir     string `json:"-" yaml:"-"` // directory of simulation file
	DirOut  string `json:"-" yaml:"-"` // directory to save results
	Key     string `json:"-" yaml:"-"` // simulation key; e.g. mysim01.sim => mysim01 or mysim01-alias
	EncType string `json:"-" yaml:"-"` // encoder type
}

// SetDefault sets default values
func (o *Simulation) SetDefault() {
	o.Data.Encoder = "gob"
	o.NetData.Type = "cubic"
	o.Phase.Name = "mercury"
	o.Capillary.Model = "purcell"
}

// PostProcess sets derived values and validates input data
func (o *Simulation) PostProcess() (err error) {

	// derived
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/gopnm/" + o.Key
	}
	o.EncType = o.Data.Encoder
	o.Percolation.SetDefault()

	// struct tags
	if err = validate.Struct(o); err != nil {
		return chk.Err("input data is invalid:\n%v", err)
	}

	// network
	switch o.NetData.Type {
	case "cubic":
		if len(o.NetData.Shape) != 3 {
			return chk.Err("cubic network requires shape = [nx, ny, nz]")
		}
		if o.NetData.Spacing == 0 {
			o.NetData.Spacing = 1e-4
		}
	case "file":
		if o.NetData.File == "" {
			return chk.Err("network file must be given")
		}
	case "explicit":
		if len(o.NetData.Pores) == 0 {
			return chk.Err("explicit network requires pores")
		}
	}
	return
}

// ReadSim reads all simulation data from a .sim JSON file or a .yaml/.yml file
//  Input:
//   simfilepath  -- path of simulation file
//   alias        -- word to be appended to simulation key; e.g. when running multiple simulations
//   erasePrev    -- erase previous results files
//   createDirOut -- create output directory
func ReadSim(simfilepath, alias string, erasePrev, createDirOut bool) (o *Simulation, err error) {

	// read file
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// decode
	o = new(Simulation)
	o.SetDefault()
	if err = decode(simfilepath, b, o); err != nil {
		return nil, chk.Err("cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// key
	o.Dir = os.ExpandEnv(filepath.Dir(simfilepath))
	o.Key = io.FnKey(filepath.Base(simfilepath))
	if alias != "" {
		o.Key += "-" + alias
	}
	if err = o.PostProcess(); err != nil {
		return nil, err
	}

	// output directory
	if createDirOut {
		if err = os.MkdirAll(o.DirOut, 0777); err != nil {
			return nil, chk.Err("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
	}
	if erasePrev {
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, o.Key))
	}
	return
}

// GetInfo writes the simulation data as indented JSON
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return
	}
	_, err = w.Write(b)
	return
}

// Fluid returns the invading fluid
func (o *Simulation) Fluid() (fld *fluid.Model, err error) {
	fld = &fluid.Model{Name: o.Phase.Name}
	prms := o.Phase.Prms
	if len(prms) == 0 {
		prms = fld.GetPrms(true)
	}
	if err = fld.Init(prms); err != nil {
		return nil, err
	}
	return
}

// CapModel returns the initialised entry-pressure model
func (o *Simulation) CapModel() (mdl capillary.Model, err error) {
	mdl, err = capillary.New(strings.ToLower(o.Capillary.Model))
	if err != nil {
		return
	}
	if err = mdl.Init(o.Capillary.Prms); err != nil {
		return nil, err
	}
	return
}

// decode decodes JSON or YAML data according to the file extension
func decode(path string, b []byte, v interface{}) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(b, v)
	}
	return json.Unmarshal(b, v)
}
